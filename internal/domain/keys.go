package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// Principal is the authenticated caller, as resolved by the auth
// middleware. Handlers dispatch on Role at the boundary; usecases trust
// the principal they receive.
type Principal struct {
	UserID string
	Role   string
}
