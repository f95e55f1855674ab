package staffauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	pkgjwt "github.com/jhoicas/tienda-pos/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Minter lo implementa *jwt.Signer.
type Minter interface {
	Mint(identity pkgjwt.VerifiedStaffIdentity) (string, error)
}

// dummyPinHash se compara cuando el staff no existe para que el tiempo de respuesta
// no revele qué IDs son válidos.
var dummyPinHash, _ = bcrypt.GenerateFromPassword([]byte("00000000"), bcrypt.DefaultCost)

// PinLoginUseCase verifica PIN y estado del staff y emite la credencial compatible con RLS.
type PinLoginUseCase struct {
	staffRepo repository.StaffRepository
	minter    Minter
}

// NewPinLoginUseCase construye el caso de uso.
func NewPinLoginUseCase(staffRepo repository.StaffRepository, minter Minter) *PinLoginUseCase {
	return &PinLoginUseCase{staffRepo: staffRepo, minter: minter}
}

// Login devuelve ErrUnauthorized si el staff no existe, el PIN no coincide o la organización
// no es la esperada, y ErrForbidden si el staff está inactivo.
func (uc *PinLoginUseCase) Login(ctx context.Context, in dto.StaffPinLoginRequest) (*dto.StaffPinLoginResponse, error) {
	staff, err := uc.staffRepo.GetByID(ctx, in.StaffID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnexpected, err)
	}
	if staff == nil {
		_ = bcrypt.CompareHashAndPassword(dummyPinHash, []byte(in.Pin))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PinHash), []byte(in.Pin)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: pin_hash: %w", domain.ErrUnexpected, err)
	}
	if in.OrganizationID != "" && in.OrganizationID != staff.OrganizationID {
		return nil, domain.ErrUnauthorized
	}
	if !staff.IsActive() {
		return nil, domain.ErrForbidden
	}

	identity := staff.Identity()
	token, err := uc.minter.Mint(identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnexpected, err)
	}
	return &dto.StaffPinLoginResponse{
		Token:     token,
		ExpiresIn: int(pkgjwt.CredentialTTL.Seconds()),
		Staff:     ToIdentityResponse(identity),
	}, nil
}

// ToIdentityResponse mapea la identidad al DTO de salida.
func ToIdentityResponse(id pkgjwt.VerifiedStaffIdentity) dto.StaffIdentityResponse {
	return dto.StaffIdentityResponse{
		StaffID:        id.StaffID,
		OrganizationID: id.OrganizationID,
		StaffRole:      id.StaffRole,
	}
}
