package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const testSecret = "ingest-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "pps-indexer",
		"iss": "harmonix-jobs",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestValidateEVMAddress(t *testing.T) {
	tests := map[string]bool{
		"0x5b38da6a701c568545dcfcb03fcb875f56beddc4": true,
		"0x5B38Da6a701c568545dCfcB03FcB875f56beddC4": true,
		"5b38da6a701c568545dcfcb03fcb875f56beddc4":   false,
		"0x5b38da6a701c568545dcfcb03fcb875f56beddc":  false,
		"0x5b38da6a701c568545dcfcb03fcb875f56beddzz": false,
		"":   false,
		"0x": false,
	}

	for addr, want := range tests {
		assert.Equal(t, want, ValidateEVMAddress(addr), "address %q", addr)
	}
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
		NormalizeAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"),
	)
	assert.Equal(t,
		NormalizeAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4"),
		NormalizeAddress("0x5B38DA6A701C568545DCFCB03FCB875F56BEDDC4"),
	)
}

func TestJWTValidator_ValidToken(t *testing.T) {
	v := NewJWTValidator(testSecret, "harmonix-jobs")

	claims, err := v.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "pps-indexer", claims["sub"])
}

func TestJWTValidator_Rejects(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noExp := validClaims()
	delete(noExp, "exp")

	otherIssuer := validClaims()
	otherIssuer["iss"] = "someone-else"

	tests := []struct {
		name  string
		token string
	}{
		{"garbled", "not.a.jwt"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims())},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims())},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"missing exp", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExp)},
		{"wrong issuer", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), otherIssuer)},
	}

	v := NewJWTValidator(testSecret, "harmonix-jobs")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.ValidateToken(tc.token)
			require.Error(t, err)
		})
	}
}

func TestJWTValidator_IssuerOptional(t *testing.T) {
	claims := validClaims()
	claims["iss"] = "anyone"

	v := NewJWTValidator(testSecret, "")
	_, err := v.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
	require.NoError(t, err)
}

func TestJWTValidator_NotConfigured(t *testing.T) {
	v := NewJWTValidator("", "")
	assert.False(t, v.IsConfigured())

	_, err := v.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))
	require.Error(t, err)
}

func newGuardedHandler() http.Handler {
	v := NewJWTValidator(testSecret, "harmonix-jobs")
	return RequireBearer(v, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, _ := SubjectFromContext(r.Context())
		w.Header().Set("X-Subject", sub)
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestRequireBearer(t *testing.T) {
	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims())

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + valid, http.StatusNoContent},
		{"lower-case scheme", "bearer " + valid, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"basic scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbled", "Bearer garbage", http.StatusUnauthorized},
	}

	handler := newGuardedHandler()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/vaults/x/points", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"code":401`)
			} else {
				assert.Equal(t, "pps-indexer", rec.Header().Get("X-Subject"))
			}
		})
	}
}

func TestSubjectField(t *testing.T) {
	field := SubjectField(WithSubject(context.Background(), "indexer"))
	assert.Equal(t, "subject", field.Key)
	assert.Equal(t, "indexer", field.String)

	assert.Equal(t, zapcore.SkipType, SubjectField(context.Background()).Type)
}
