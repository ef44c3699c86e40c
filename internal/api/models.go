package api

// ListFoodsQuery holds the validated numeric parameters of GET /foods.
type ListFoodsQuery struct {
	Limit int64 `validate:"gte=0"`
}

// LivenessMessage is the body of GET /.
const LivenessMessage = "Server is running"
