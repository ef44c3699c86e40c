// Package firebase boots the Firebase Admin SDK from a base64 service
// account key and adapts Firebase ID-token verification to auth.Verifier.
package firebase
