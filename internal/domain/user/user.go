package user

type RoleCode string

const (
	RoleCodeCustomer RoleCode = "customer"
	RoleCodeAdmin    RoleCode = "admin"
)

func ParseRoleCode(s string) (RoleCode, error) {
	switch RoleCode(s) {
	case RoleCodeCustomer, RoleCodeAdmin:
		return RoleCode(s), nil
	default:
		return "", ErrInvalidRoleCode
	}
}

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	RoleCode     RoleCode
}
