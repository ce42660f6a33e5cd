package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una credencial del sistema.
// Se crea por registro o por el seed inicial y no se modifica después.
type User struct {
	ID           string
	Name         string
	Username     string // único
	PasswordHash string // bcrypt, nunca se devuelve al cliente
	Role         string // admin, user
}

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// ValidateNewUser valida los datos de registro antes de hashear la contraseña.
func ValidateNewUser(name, username, password, role string) ValidationErrors {
	var errs ValidationErrors
	errs.Required("name", name)
	errs.Required("username", username)
	errs.Required("password", password)
	if role != "" && !ValidRole(role) {
		errs.Add("role", "debe ser admin o user")
	}
	return errs
}
