package record_test

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

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/contentstore"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/handlers/http/chi"
	record2 "github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/adapters/handlers/http/chi/v1/record"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/access"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/geofence"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/service/registry"
)

func TestRegisterRecordV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uploader := testPrincipal(0x01)
	hash := testHash(0xaa)

	newRegisterRouter := func(mockRegistry *registry.MockRegistryService) http2.Handler {
		handler := record2.NewRecordHandlerV1(mockRegistry, access.NewMockAccessService(), geofence.NewMockGeofenceService(), contentstore.NewMockContentStore(), discardLogger)
		return chi.NewRouter(discardLogger, handler, nil, nil, "")
	}

	t.Run("success - register pre-stored content", func(t *testing.T) {
		// Arrange
		mockRegistry := registry.NewMockRegistryService()
		mockRegistry.On("Put", mock.Anything, uploader, hash, "s3://vault/abc123", ([]byte)(nil),
			true, int32(48_858_370), int32(2_294_481), uint32(75)).
			Return(domain.FileRecord{
				FileHash:         hash,
				Uploader:         uploader,
				StoragePointer:   "s3://vault/abc123",
				HasLocationLock:  true,
				LockLatMicro:     48_858_370,
				LockLonMicro:     2_294_481,
				LockRadiusMeters: 75,
			}, nil)

		h := newRegisterRouter(mockRegistry)
		w := httptest.NewRecorder()

		payload, err := json.Marshal(record2.V1RegisterRecordRequest{
			FileHash:        hash.String(),
			StoragePointer:  "s3://vault/abc123",
			HasLocationLock: true,
			LockLatMicro:    48_858_370,
			LockLonMicro:    2_294_481,
			LockRadiusM:     75,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/record/register", bytes.NewReader(payload))
		req.Header.Set("X-Vault-Principal", uploader.String())

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusCreated, w.Code)

		var response record2.V1RecordResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, hash.String(), response.FileHash)
		assert.Equal(t, "s3://vault/abc123", response.StoragePointer)
		assert.True(t, response.HasLocationLock)

		mockRegistry.AssertExpectations(t)
	})

	t.Run("error - missing principal header", func(t *testing.T) {
		// Arrange
		mockRegistry := registry.NewMockRegistryService()
		h := newRegisterRouter(mockRegistry)
		w := httptest.NewRecorder()

		payload, err := json.Marshal(record2.V1RegisterRecordRequest{FileHash: hash.String(), StoragePointer: "s3://vault/abc123"})
		require.NoError(t, err)

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/record/register", bytes.NewReader(payload))

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusUnauthorized, w.Code)
		mockRegistry.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - malformed body", func(t *testing.T) {
		// Arrange
		h := newRegisterRouter(registry.NewMockRegistryService())
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/record/register", bytes.NewReader([]byte("{not json")))
		req.Header.Set("X-Vault-Principal", uploader.String())

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - invalid file hash", func(t *testing.T) {
		// Arrange
		h := newRegisterRouter(registry.NewMockRegistryService())
		w := httptest.NewRecorder()

		payload, err := json.Marshal(record2.V1RegisterRecordRequest{FileHash: "0x1234", StoragePointer: "s3://vault/abc123"})
		require.NoError(t, err)

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/record/register", bytes.NewReader(payload))
		req.Header.Set("X-Vault-Principal", uploader.String())

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - empty storage pointer", func(t *testing.T) {
		// Arrange
		mockRegistry := registry.NewMockRegistryService()
		mockRegistry.On("Put", mock.Anything, uploader, hash, "", ([]byte)(nil),
			false, int32(0), int32(0), uint32(0)).
			Return(domain.FileRecord{}, domain.ErrInvalidPointer)

		h := newRegisterRouter(mockRegistry)
		w := httptest.NewRecorder()

		payload, err := json.Marshal(record2.V1RegisterRecordRequest{FileHash: hash.String()})
		require.NoError(t, err)

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/record/register", bytes.NewReader(payload))
		req.Header.Set("X-Vault-Principal", uploader.String())

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockRegistry.AssertExpectations(t)
	})

	t.Run("error - duplicate hash", func(t *testing.T) {
		// Arrange
		mockRegistry := registry.NewMockRegistryService()
		mockRegistry.On("Put", mock.Anything, uploader, hash, "s3://vault/abc123", ([]byte)(nil),
			false, int32(0), int32(0), uint32(0)).
			Return(domain.FileRecord{}, domain.ErrAlreadyExists)

		h := newRegisterRouter(mockRegistry)
		w := httptest.NewRecorder()

		payload, err := json.Marshal(record2.V1RegisterRecordRequest{FileHash: hash.String(), StoragePointer: "s3://vault/abc123"})
		require.NoError(t, err)

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/record/register", bytes.NewReader(payload))
		req.Header.Set("X-Vault-Principal", uploader.String())

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusConflict, w.Code)
		mockRegistry.AssertExpectations(t)
	})

	t.Run("error - registry unavailable", func(t *testing.T) {
		// Arrange
		mockRegistry := registry.NewMockRegistryService()
		mockRegistry.On("Put", mock.Anything, uploader, hash, "s3://vault/abc123", ([]byte)(nil),
			false, int32(0), int32(0), uint32(0)).
			Return(domain.FileRecord{}, assert.AnError)

		h := newRegisterRouter(mockRegistry)
		w := httptest.NewRecorder()

		payload, err := json.Marshal(record2.V1RegisterRecordRequest{FileHash: hash.String(), StoragePointer: "s3://vault/abc123"})
		require.NoError(t, err)

		req := httptest.NewRequest(http2.MethodPost, "/api/v1/record/register", bytes.NewReader(payload))
		req.Header.Set("X-Vault-Principal", uploader.String())

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
		mockRegistry.AssertExpectations(t)
	})
}
