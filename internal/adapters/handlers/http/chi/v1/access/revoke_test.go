package access_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	access2 "github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/handlers/http/chi/v1/access"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/access"
)

func TestRevokeAccessV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hash := testHash(0xaa)
	uploader := testPrincipal(0x01)
	grantee := testPrincipal(0x02)

	revokeRequest := func(t *testing.T, granteeHex string) *http2.Request {
		t.Helper()
		payload, err := json.Marshal(access2.V1RevokeAccessRequest{Grantee: granteeHex})
		require.NoError(t, err)
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/access/"+hash.String()+"/revoke", bytes.NewReader(payload))
		req.Header.Set("X-Vault-Principal", uploader.String())
		return req
	}

	t.Run("success - uploader revokes access", func(t *testing.T) {
		// Arrange
		mockAccess := access.NewMockAccessService()
		mockAccess.On("Revoke", mock.Anything, uploader, hash, grantee).Return(nil)

		h := newAccessRouter(mockAccess, discardLogger)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, revokeRequest(t, grantee.String()))

		// Assert
		assert.Equal(t, http2.StatusNoContent, w.Code)
		mockAccess.AssertExpectations(t)
	})

	t.Run("error - missing principal header", func(t *testing.T) {
		// Arrange
		mockAccess := access.NewMockAccessService()
		h := newAccessRouter(mockAccess, discardLogger)
		w := httptest.NewRecorder()

		payload, err := json.Marshal(access2.V1RevokeAccessRequest{Grantee: grantee.String()})
		require.NoError(t, err)
		req := httptest.NewRequest(http2.MethodPost, "/api/v1/access/"+hash.String()+"/revoke", bytes.NewReader(payload))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusUnauthorized, w.Code)
		mockAccess.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - record not found", func(t *testing.T) {
		// Arrange
		mockAccess := access.NewMockAccessService()
		mockAccess.On("Revoke", mock.Anything, uploader, hash, grantee).Return(domain.ErrRecordNotFound)

		h := newAccessRouter(mockAccess, discardLogger)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, revokeRequest(t, grantee.String()))

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockAccess.AssertExpectations(t)
	})

	t.Run("error - caller is not the uploader", func(t *testing.T) {
		// Arrange
		mockAccess := access.NewMockAccessService()
		mockAccess.On("Revoke", mock.Anything, uploader, hash, grantee).Return(domain.ErrUnauthorized)

		h := newAccessRouter(mockAccess, discardLogger)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, revokeRequest(t, grantee.String()))

		// Assert
		assert.Equal(t, http2.StatusForbidden, w.Code)
		mockAccess.AssertExpectations(t)
	})

	t.Run("error - uploader revoking themselves", func(t *testing.T) {
		// Arrange
		mockAccess := access.NewMockAccessService()
		mockAccess.On("Revoke", mock.Anything, uploader, hash, uploader).Return(domain.ErrSelfRevocation)

		h := newAccessRouter(mockAccess, discardLogger)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, revokeRequest(t, uploader.String()))

		// Assert
		assert.Equal(t, http2.StatusConflict, w.Code)
		mockAccess.AssertExpectations(t)
	})

	t.Run("error - access service unavailable", func(t *testing.T) {
		// Arrange
		mockAccess := access.NewMockAccessService()
		mockAccess.On("Revoke", mock.Anything, uploader, hash, grantee).Return(assert.AnError)

		h := newAccessRouter(mockAccess, discardLogger)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, revokeRequest(t, grantee.String()))

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
		mockAccess.AssertExpectations(t)
	})
}
