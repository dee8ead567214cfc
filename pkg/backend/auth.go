package backend

import "github.com/golang-jwt/jwt/v5"

// sessionSigningKey signs the per-process session token. The backend is a
// simulation: the key is fixed on purpose so the token is stable and the
// bearer gate can compare full strings, the way the UI stores and replays
// it.
var sessionSigningKey = []byte("bankd-fake-backend")

// mintSessionToken produces the fixed session token returned by login. The
// claims carry no timestamps, so every router in a process mints the same
// string.
func mintSessionToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "bankd",
		"sub": "session",
	})
	return token.SignedString(sessionSigningKey)
}

// authorize applies the bearer-token gate. The gate ships disabled to match
// the UI's current behavior; when enforcement is turned on, every account
// route requires the session token.
func (r *Router) authorize(req *Request) error {
	if !r.enforceAuth {
		return nil
	}
	if req.Headers["Authorization"] != "Bearer "+r.token {
		return &UnauthorizedError{}
	}
	return nil
}
