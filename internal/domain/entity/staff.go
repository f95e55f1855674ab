package entity

import (
	"time"

	"github.com/jhoicas/tienda-pos/pkg/jwt"
)

// Roles de aplicación para Staff (no confundir con el rol que lee la política RLS).
const (
	StaffRoleStaff   = "staff"
	StaffRoleManager = "manager"
)

// Estados de un registro de Staff.
const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
)

// Staff representa un cajero/empleado de una organización que se autentica con PIN.
type Staff struct {
	ID             string
	OrganizationID string
	Name           string
	PinHash        string // bcrypt hash del PIN numérico
	Role           string // staff, manager
	Status         string // active, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Identity devuelve la identidad que se entrega al emisor de credenciales.
// Solo debe llamarse después de comprobar el PIN y el estado.
func (s *Staff) Identity() jwt.VerifiedStaffIdentity {
	return jwt.VerifiedStaffIdentity{
		StaffID:        s.ID,
		OrganizationID: s.OrganizationID,
		StaffRole:      s.Role,
	}
}

// IsActive indica si el staff puede iniciar sesión.
func (s *Staff) IsActive() bool {
	return s.Status == StaffStatusActive
}
