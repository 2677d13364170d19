package domain

// AuthState is the discriminated authentication state of a request:
// either anonymous (public storefront traffic) or authenticated as a
// catalog owner (the external editor collaborator). There is no open
// user object; everything the server needs is the owner ID.
type AuthState struct {
	ownerID string
}

// Anonymous is the auth state of public storefront traffic.
var Anonymous = AuthState{}

// Authenticated returns the auth state for a catalog owner.
func Authenticated(ownerID string) AuthState {
	return AuthState{ownerID: ownerID}
}

// IsAuthenticated reports whether the state carries an owner identity.
func (a AuthState) IsAuthenticated() bool {
	return a.ownerID != ""
}

// OwnerID returns the authenticated owner ID, or "" when anonymous.
func (a AuthState) OwnerID() string {
	return a.ownerID
}
