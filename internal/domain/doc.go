// Package domain contains the core entities of the food-sharing service: the
// schema-flexible Document, the Food items users share, and the RequestedFood
// claims users make on them. It owns the attribute names the authorization and
// query rules depend on and the normalization applied to dates before storage,
// independent of any specific store or delivery mechanism.
package domain
