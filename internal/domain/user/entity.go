package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = errors.New("usuário não encontrado")
	ErrEmailDuplicate     = errors.New("email já cadastrado")
	ErrManagerNeedsStore  = errors.New("managers devem estar associados a uma loja")
	ErrAdminWithStore     = errors.New("admins não devem estar associados a uma loja específica")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInactiveUser       = errors.New("usuário inativo")
	ErrInvalidRole        = errors.New("papel inválido")
)

// Role representa o papel do usuário
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// Valid verifica se o papel é um dos valores aceitos
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager
}

// User representa um usuário do sistema. StoreID só é preenchido para
// managers; admins têm escopo universal implícito.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	StoreID   *string    `json:"store_id,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// NewUser cria um novo usuário ativo
func NewUser(email, name string, role Role, storeID *string) *User {
	now := time.Now()
	return &User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Role:      role,
		StoreID:   storeID,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetPassword configura a senha do usuário com hash bcrypt
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// IsAdmin verifica se o usuário é administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// StoreIDValue retorna o ID da loja vinculada ou string vazia
func (u *User) StoreIDValue() string {
	if u.StoreID == nil {
		return ""
	}
	return *u.StoreID
}
