package record_test

import (
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

func TestGetRecordV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hash := testHash(0xaa)
	uploader := testPrincipal(0x01)

	t.Run("success - record found", func(t *testing.T) {
		// Arrange
		record := testRecord(hash, uploader)

		mockRegistry := registry.NewMockRegistryService()
		mockRegistry.On("Get", mock.Anything, hash).Return(record, true, nil)

		handler := record2.NewRecordHandlerV1(mockRegistry, access.NewMockAccessService(), geofence.NewMockGeofenceService(), contentstore.NewMockContentStore(), discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/record/"+hash.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)

		var response record2.V1RecordResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, hash.String(), response.FileHash)
		assert.Equal(t, uploader.String(), response.Uploader)
		assert.Equal(t, record.StoragePointer, response.StoragePointer)
		assert.Equal(t, record.Signature, response.Signature)
		assert.True(t, record.Timestamp.Equal(response.Timestamp))
		assert.False(t, response.HasLocationLock)

		mockRegistry.AssertExpectations(t)
	})

	t.Run("error - record not found", func(t *testing.T) {
		// Arrange
		mockRegistry := registry.NewMockRegistryService()
		mockRegistry.On("Get", mock.Anything, hash).Return(domain.FileRecord{}, false, nil)

		handler := record2.NewRecordHandlerV1(mockRegistry, access.NewMockAccessService(), geofence.NewMockGeofenceService(), contentstore.NewMockContentStore(), discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/record/"+hash.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
		mockRegistry.AssertExpectations(t)
	})

	t.Run("error - invalid hash", func(t *testing.T) {
		// Arrange
		mockRegistry := registry.NewMockRegistryService()
		handler := record2.NewRecordHandlerV1(mockRegistry, access.NewMockAccessService(), geofence.NewMockGeofenceService(), contentstore.NewMockContentStore(), discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/record/0xnothex", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		mockRegistry.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("error - registry unavailable", func(t *testing.T) {
		// Arrange
		mockRegistry := registry.NewMockRegistryService()
		mockRegistry.On("Get", mock.Anything, hash).Return(domain.FileRecord{}, false, assert.AnError)

		handler := record2.NewRecordHandlerV1(mockRegistry, access.NewMockAccessService(), geofence.NewMockGeofenceService(), contentstore.NewMockContentStore(), discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/record/"+hash.String(), nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
		mockRegistry.AssertExpectations(t)
	})
}

func TestRecordExistsV1(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hash := testHash(0xaa)

	t.Run("success - present and absent", func(t *testing.T) {
		// Arrange
		present := testHash(0xaa)
		absent := testHash(0xbb)

		mockRegistry := registry.NewMockRegistryService()
		mockRegistry.On("Exists", mock.Anything, present).Return(true, nil)
		mockRegistry.On("Exists", mock.Anything, absent).Return(false, nil)

		handler := record2.NewRecordHandlerV1(mockRegistry, access.NewMockAccessService(), geofence.NewMockGeofenceService(), contentstore.NewMockContentStore(), discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "")

		for hash, expected := range map[domain.FileHash]bool{present: true, absent: false} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http2.MethodGet, "/api/v1/record/"+hash.String()+"/exists", nil)

			// Act
			h.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http2.StatusOK, w.Code)

			var response record2.V1RecordExistsResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, expected, response.Exists)
		}

		mockRegistry.AssertExpectations(t)
	})

	t.Run("error - invalid hash", func(t *testing.T) {
		// Arrange
		handler := record2.NewRecordHandlerV1(registry.NewMockRegistryService(), access.NewMockAccessService(), geofence.NewMockGeofenceService(), contentstore.NewMockContentStore(), discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/record/1234/exists", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("error - registry unavailable", func(t *testing.T) {
		// Arrange
		mockRegistry := registry.NewMockRegistryService()
		mockRegistry.On("Exists", mock.Anything, hash).Return(false, assert.AnError)

		handler := record2.NewRecordHandlerV1(mockRegistry, access.NewMockAccessService(), geofence.NewMockGeofenceService(), contentstore.NewMockContentStore(), discardLogger)
		h := chi.NewRouter(discardLogger, handler, nil, nil, "")
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/record/"+hash.String()+"/exists", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
		mockRegistry.AssertExpectations(t)
	})
}
