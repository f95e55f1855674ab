package staffauth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/staffauth"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	pkgjwt "github.com/jhoicas/tienda-pos/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests-32b"

type fakeStaffRepo struct {
	staff map[string]*entity.Staff
	err   error
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (*entity.Staff, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.staff[id], nil
}

type memRevocationStore struct {
	ids map[string]time.Duration
	err error
}

func (m *memRevocationStore) Revoke(_ context.Context, id string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.ids[id] = ttl
	return nil
}

func (m *memRevocationStore) IsRevoked(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.ids[id]
	return ok, nil
}

func newSigner(t *testing.T) *pkgjwt.Signer {
	t.Helper()
	s, err := pkgjwt.NewSigner(testSecret)
	require.NoError(t, err)
	return s
}

func newStaff(t *testing.T, id, org, pin, status string) *entity.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Staff{ID: id, OrganizationID: org, Name: "Cajero", PinHash: string(hash), Role: entity.StaffRoleStaff, Status: status}
}

// ──────────────────────────────────────────────────────────────────────────────
// PinLoginUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestPinLogin_PinCorrecto_EmiteCredencial(t *testing.T) {
	signer := newSigner(t)
	repo := &fakeStaffRepo{staff: map[string]*entity.Staff{"s1": newStaff(t, "s1", "o1", "1234", entity.StaffStatusActive)}}
	uc := staffauth.NewPinLoginUseCase(repo, signer)

	out, err := uc.Login(context.Background(), dto.StaffPinLoginRequest{StaffID: "s1", Pin: "1234"})
	require.NoError(t, err)
	assert.Equal(t, 8*3600, out.ExpiresIn)
	assert.Equal(t, dto.StaffIdentityResponse{StaffID: "s1", OrganizationID: "o1", StaffRole: "staff"}, out.Staff)

	identity, err := signer.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.VerifiedStaffIdentity{StaffID: "s1", OrganizationID: "o1", StaffRole: "staff"}, identity)
}

func TestPinLogin_Rechazos(t *testing.T) {
	repo := &fakeStaffRepo{staff: map[string]*entity.Staff{
		"s1": newStaff(t, "s1", "o1", "1234", entity.StaffStatusActive),
		"s2": newStaff(t, "s2", "o1", "5678", entity.StaffStatusInactive),
	}}
	uc := staffauth.NewPinLoginUseCase(repo, newSigner(t))

	cases := []struct {
		name string
		in   dto.StaffPinLoginRequest
		want error
	}{
		{"pin incorrecto", dto.StaffPinLoginRequest{StaffID: "s1", Pin: "0000"}, domain.ErrUnauthorized},
		{"staff inexistente", dto.StaffPinLoginRequest{StaffID: "nadie", Pin: "1234"}, domain.ErrUnauthorized},
		{"otra organización", dto.StaffPinLoginRequest{StaffID: "s1", OrganizationID: "o2", Pin: "1234"}, domain.ErrUnauthorized},
		{"staff inactivo", dto.StaffPinLoginRequest{StaffID: "s2", Pin: "5678"}, domain.ErrForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.Login(context.Background(), tc.in)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPinLogin_ErrorDeRepositorio_EsInesperado(t *testing.T) {
	repo := &fakeStaffRepo{err: errors.New("conexión perdida")}
	uc := staffauth.NewPinLoginUseCase(repo, newSigner(t))

	_, err := uc.Login(context.Background(), dto.StaffPinLoginRequest{StaffID: "s1", Pin: "1234"})
	assert.ErrorIs(t, err, domain.ErrUnexpected)
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_Authenticate_CredencialValida(t *testing.T) {
	signer := newSigner(t)
	tok, err := signer.Mint(pkgjwt.VerifiedStaffIdentity{StaffID: "s1", OrganizationID: "o1", StaffRole: "staff"})
	require.NoError(t, err)

	uc := staffauth.NewSessionUseCase(signer, nil)
	sess, err := uc.Authenticate(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "o1", sess.Identity.OrganizationID)
	assert.NotEmpty(t, sess.Claims.ID)
}

func TestSession_Authenticate_Basura_EsCredencialInvalida(t *testing.T) {
	uc := staffauth.NewSessionUseCase(newSigner(t), nil)
	_, err := uc.Authenticate(context.Background(), "no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidCredential)
}

func TestSession_RevokeLuegoAuthenticate_Rechaza(t *testing.T) {
	signer := newSigner(t)
	tok, err := signer.Mint(pkgjwt.VerifiedStaffIdentity{StaffID: "s1", OrganizationID: "o1", StaffRole: "staff"})
	require.NoError(t, err)
	store := &memRevocationStore{ids: map[string]time.Duration{}}
	uc := staffauth.NewSessionUseCase(signer, store)

	require.NoError(t, uc.Revoke(context.Background(), tok))
	require.Len(t, store.ids, 1)
	for _, ttl := range store.ids {
		assert.InDelta(t, (8 * time.Hour).Seconds(), ttl.Seconds(), 5, "TTL = vida restante de la credencial")
	}

	_, err = uc.Authenticate(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrRevokedCredential)
}

func TestSession_Revoke_TokenInvalido_NoEsError(t *testing.T) {
	store := &memRevocationStore{ids: map[string]time.Duration{}}
	uc := staffauth.NewSessionUseCase(newSigner(t), store)

	assert.NoError(t, uc.Revoke(context.Background(), ""))
	assert.NoError(t, uc.Revoke(context.Background(), "basura"))
	assert.Empty(t, store.ids)
}

func TestSession_ListaCaida_EsInesperado(t *testing.T) {
	signer := newSigner(t)
	tok, err := signer.Mint(pkgjwt.VerifiedStaffIdentity{StaffID: "s1", OrganizationID: "o1", StaffRole: "staff"})
	require.NoError(t, err)
	uc := staffauth.NewSessionUseCase(signer, &memRevocationStore{err: errors.New("redis caído")})

	_, err = uc.Authenticate(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrUnexpected)
	assert.ErrorIs(t, uc.Revoke(context.Background(), tok), domain.ErrUnexpected)
}
