package postgres

import (
	"encoding/json"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/tienda-pos/pkg/jwt"
)

func TestClaimsSettings_ParametrosParaPoliticas(t *testing.T) {
	claims := pkgjwt.Encode(pkgjwt.VerifiedStaffIdentity{StaffID: "s1", OrganizationID: "o1", StaffRole: "staff"})
	claims.ID = "jti-1"
	claims.ExpiresAt = gojwt.NewNumericDate(time.Unix(1_700_028_800, 0))

	args, err := claimsSettings(&claims)
	require.NoError(t, err)
	require.Len(t, args, 3)
	assert.Equal(t, "s1", args[1])
	assert.Equal(t, "authenticated", args[2])

	raw, ok := args[0].(string)
	require.True(t, ok)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, "s1", got["sub"])
	assert.Equal(t, "authenticated", got["role"])
	assert.Equal(t, "authenticated", got["aud"], "aud como string, igual que en el token")
	assert.Equal(t, "staff", got["staff_role"])
	assert.Equal(t, "jti-1", got["jti"])
	assert.Equal(t, float64(1_700_028_800), got["exp"])
	meta, ok := got["app_metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "o1", meta["organization_id"])
}

func TestClaimsSettings_Rechazos(t *testing.T) {
	_, err := claimsSettings(nil)
	assert.Error(t, err)

	claims := pkgjwt.Encode(pkgjwt.VerifiedStaffIdentity{StaffID: "s1", OrganizationID: "o1", StaffRole: "staff"})
	claims.Role = "service_role"
	_, err = claimsSettings(&claims)
	assert.Error(t, err, "nunca se fija un rol distinto de authenticated")
}
