package dto

// StaffSessionRequest entrada para establecer la sesión de staff con una credencial ya emitida.
type StaffSessionRequest struct {
	Token string `json:"token" validate:"required"`
}

// StaffPinLoginRequest entrada del login por PIN.
// OrganizationID es opcional: si la terminal está asociada a una tienda, se exige que coincida.
type StaffPinLoginRequest struct {
	StaffID        string `json:"staff_id" validate:"required,max=64"`
	OrganizationID string `json:"organization_id" validate:"omitempty,max=64"`
	Pin            string `json:"pin" validate:"required,numeric,min=4,max=8"`
}

// StaffIdentityResponse identidad de staff decodificada de la credencial.
type StaffIdentityResponse struct {
	StaffID        string `json:"staff_id"`
	OrganizationID string `json:"organization_id"`
	StaffRole      string `json:"staff_role"`
}

// StaffPinLoginResponse salida del login por PIN: credencial + identidad.
type StaffPinLoginResponse struct {
	Token     string                `json:"token"`
	ExpiresIn int                   `json:"expires_in"` // segundos
	Staff     StaffIdentityResponse `json:"staff"`
}
