package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JMURv/pairlink/internal/config"
	"github.com/JMURv/pairlink/internal/dto"
	md "github.com/JMURv/pairlink/internal/models"
	"github.com/JMURv/pairlink/internal/repo"
	"github.com/JMURv/pairlink/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

func TestController_GeneratePairingCode(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	conf := config.Default()
	ctrl := New(conf, mockRepo, mockCache)

	testDevice := &md.Device{
		ID:          uuid.New(),
		Code:        "AB12",
		PhoneNumber: md.UnclaimedPhone,
		ExpiresAt:   time.Now().Add(10 * time.Minute),
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockRepo.EXPECT().
					GetLiveDeviceByCode(gomock.Any(), gomock.Any()).
					Return(nil, repo.ErrNotFound)
				mockRepo.EXPECT().
					CreateDevice(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					CreateConnection(gomock.Any(), testDevice.ID, md.StatusPending).
					Return(&md.Connection{ID: uuid.New(), DeviceID: testDevice.ID, Status: md.StatusPending}, nil)
				mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "RetryAfterCollision",
			setup: func() {
				mockRepo.EXPECT().
					GetLiveDeviceByCode(gomock.Any(), gomock.Any()).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					GetLiveDeviceByCode(gomock.Any(), gomock.Any()).
					Return(nil, repo.ErrNotFound)
				mockRepo.EXPECT().
					CreateDevice(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(testDevice, nil)
				mockRepo.EXPECT().
					CreateConnection(gomock.Any(), testDevice.ID, md.StatusPending).
					Return(&md.Connection{ID: uuid.New(), DeviceID: testDevice.ID, Status: md.StatusPending}, nil)
				mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "BudgetExhausted",
			setup: func() {
				mockRepo.EXPECT().
					GetLiveDeviceByCode(gomock.Any(), gomock.Any()).
					Return(testDevice, nil).
					Times(conf.Pairing.MaxAttempts)
			},
			wantErr: true,
			err:     ErrCodeAllocation,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().
					GetLiveDeviceByCode(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := ctrl.GeneratePairingCode(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testDevice.Code, res.Code)
			}
		})
	}
}

func TestController_GetDeviceByCode(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	conf := config.Default()
	ctrl := New(conf, mockRepo, mockCache)

	testDevice := &md.Device{
		ID:          uuid.New(),
		Code:        "AB12",
		PhoneNumber: md.UnclaimedPhone,
		ExpiresAt:   time.Now().Add(10 * time.Minute),
		CreatedAt:   time.Now(),
	}

	expiredDevice := &md.Device{
		ID:          uuid.New(),
		Code:        "XY99",
		PhoneNumber: md.UnclaimedPhone,
		ExpiresAt:   time.Now().Add(-time.Minute),
		CreatedAt:   time.Now().Add(-11 * time.Minute),
	}

	tests := []struct {
		name     string
		code     string
		setup    func()
		expected *dto.DeviceResponse
		wantErr  bool
		err      error
	}{
		{
			// Malformed input fails before any cache or repository call;
			// gomock verifies neither mock is touched.
			name:    "MalformedCode",
			code:    "abc",
			setup:   func() {},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name: "CacheHit",
			code: "ab12",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "device:AB12", gomock.Any()).
					DoAndReturn(
						func(ctx context.Context, key string, dest any) error {
							*dest.(*dto.DeviceResponse) = dto.DeviceResponse{
								ID:     testDevice.ID,
								Code:   testDevice.Code,
								Status: md.StatusPending,
							}
							return nil
						},
					)
			},
			expected: &dto.DeviceResponse{
				ID:     testDevice.ID,
				Code:   testDevice.Code,
				Status: md.StatusPending,
			},
			wantErr: false,
		},
		{
			name: "CacheMissRepoHit",
			code: "AB12",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "device:AB12", gomock.Any()).
					Return(errCacheMiss)
				mockRepo.EXPECT().
					GetDeviceByCode(gomock.Any(), "AB12").
					Return(testDevice, nil)
				mockCache.EXPECT().
					GetString(gomock.Any(), "connection:AB12").
					Return(string(md.StatusPending), nil)
				mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), "device:AB12", gomock.Any())
			},
			expected: &dto.DeviceResponse{
				ID:          testDevice.ID,
				Code:        testDevice.Code,
				PhoneNumber: testDevice.PhoneNumber,
				Status:      md.StatusPending,
				ExpiresAt:   testDevice.ExpiresAt,
				CreatedAt:   testDevice.CreatedAt,
			},
			wantErr: false,
		},
		{
			name: "NotFound",
			code: "ZZ12",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "device:ZZ12", gomock.Any()).
					Return(errCacheMiss)
				mockRepo.EXPECT().
					GetDeviceByCode(gomock.Any(), "ZZ12").
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			// An expired device is transitioned to EXPIRED as a side
			// effect and the projection still comes back.
			name: "ExpiredTriggersTransition",
			code: "XY99",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "device:XY99", gomock.Any()).
					Return(errCacheMiss)
				mockRepo.EXPECT().
					GetDeviceByCode(gomock.Any(), "XY99").
					Return(expiredDevice, nil)
				mockRepo.EXPECT().
					UpdateConnectionStatus(gomock.Any(), expiredDevice.ID, md.StatusExpired).
					Return(int64(1), nil)
				mockCache.EXPECT().
					GetString(gomock.Any(), "connection:XY99").
					Return(string(md.StatusExpired), nil)
				mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
			},
			expected: &dto.DeviceResponse{
				ID:          expiredDevice.ID,
				Code:        expiredDevice.Code,
				PhoneNumber: expiredDevice.PhoneNumber,
				Status:      md.StatusExpired,
				ExpiresAt:   expiredDevice.ExpiresAt,
				CreatedAt:   expiredDevice.CreatedAt,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := ctrl.GetDeviceByCode(ctx, tt.code)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			}
		})
	}
}

func TestController_ConnectDevice(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	conf := config.Default()
	ctrl := New(conf, mockRepo, mockCache)

	testUser := &md.User{
		ID:    uuid.New(),
		Name:  "Test User",
		Phone: "+15550001111",
	}

	newDevice := func(phone string, expiresAt time.Time) *md.Device {
		return &md.Device{
			ID:          uuid.New(),
			Code:        "AB12",
			PhoneNumber: phone,
			ExpiresAt:   expiresAt,
			CreatedAt:   time.Now(),
		}
	}

	tests := []struct {
		name    string
		phone   string
		setup   func()
		wantErr bool
		err     error
	}{
		{
			name:  "UserNotFound",
			phone: "+15559998888",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByPhone(gomock.Any(), "+15559998888").
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrUserNotFound,
		},
		{
			name:  "DeviceNotFound",
			phone: testUser.Phone,
			setup: func() {
				mockRepo.EXPECT().
					GetUserByPhone(gomock.Any(), testUser.Phone).
					Return(testUser, nil)
				mockRepo.EXPECT().
					GetDeviceByCode(gomock.Any(), "AB12").
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name:  "CodeExpired",
			phone: testUser.Phone,
			setup: func() {
				mockRepo.EXPECT().
					GetUserByPhone(gomock.Any(), testUser.Phone).
					Return(testUser, nil)
				mockRepo.EXPECT().
					GetDeviceByCode(gomock.Any(), "AB12").
					Return(newDevice(md.UnclaimedPhone, time.Now().Add(-time.Minute)), nil)
			},
			wantErr: true,
			err:     ErrCodeExpired,
		},
		{
			// Claimed by a different user: conflict, and no device,
			// connection or bundle writes happen.
			name:  "ClaimedByAnotherUser",
			phone: testUser.Phone,
			setup: func() {
				mockRepo.EXPECT().
					GetUserByPhone(gomock.Any(), testUser.Phone).
					Return(testUser, nil)
				mockRepo.EXPECT().
					GetDeviceByCode(gomock.Any(), "AB12").
					Return(newDevice("+15552223333", time.Now().Add(5*time.Minute)), nil)
				mockCache.EXPECT().
					GetString(gomock.Any(), "connection:AB12").
					Return(string(md.StatusActive), nil)
			},
			wantErr: true,
			err:     ErrAlreadyConnected,
		},
		{
			name:  "IdempotentSameUser",
			phone: testUser.Phone,
			setup: func() {
				dev := newDevice(testUser.Phone, time.Now().Add(5*time.Minute))
				mockRepo.EXPECT().
					GetUserByPhone(gomock.Any(), testUser.Phone).
					Return(testUser, nil)
				mockRepo.EXPECT().
					GetDeviceByCode(gomock.Any(), "AB12").
					Return(dev, nil)
				mockCache.EXPECT().
					GetString(gomock.Any(), "connection:AB12").
					Return(string(md.StatusActive), nil)
				mockRepo.EXPECT().
					SetDevicePhone(gomock.Any(), dev.ID, testUser.Phone).
					Return(nil)
				mockRepo.EXPECT().
					CreateConnection(gomock.Any(), dev.ID, md.StatusActive).
					Return(&md.Connection{ID: uuid.New(), DeviceID: dev.ID, Status: md.StatusActive}, nil)
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "bundle:AB12", gomock.Any()).
					Return(errCacheMiss)
				mockRepo.EXPECT().
					GetLatestBundleByDevice(gomock.Any(), dev.ID).
					Return(&md.Bundle{ID: uuid.New(), DeviceID: dev.ID}, nil)
				mockRepo.EXPECT().
					RenewBundle(gomock.Any(), gomock.Any(), gomock.Any(), conf.Pairing.BundleDays).
					Return(nil)
				mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
			},
			wantErr: false,
		},
		{
			name:  "FreshClaim",
			phone: testUser.Phone,
			setup: func() {
				dev := newDevice(md.UnclaimedPhone, time.Now().Add(5*time.Minute))
				mockRepo.EXPECT().
					GetUserByPhone(gomock.Any(), testUser.Phone).
					Return(testUser, nil)
				mockRepo.EXPECT().
					GetDeviceByCode(gomock.Any(), "AB12").
					Return(dev, nil)
				mockCache.EXPECT().
					GetString(gomock.Any(), "connection:AB12").
					Return(string(md.StatusPending), nil)
				mockRepo.EXPECT().
					SetDevicePhone(gomock.Any(), dev.ID, testUser.Phone).
					Return(nil)
				mockRepo.EXPECT().
					CreateConnection(gomock.Any(), dev.ID, md.StatusActive).
					Return(&md.Connection{ID: uuid.New(), DeviceID: dev.ID, Status: md.StatusActive}, nil)
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), "bundle:AB12", gomock.Any()).
					Return(errCacheMiss)
				mockRepo.EXPECT().
					GetLatestBundleByDevice(gomock.Any(), dev.ID).
					Return(nil, repo.ErrNotFound)
				mockRepo.EXPECT().
					CreateBundle(gomock.Any(), dev.ID, gomock.Any(), conf.Pairing.BundleDays).
					Return(&md.Bundle{ID: uuid.New(), DeviceID: dev.ID, RemainingDays: conf.Pairing.BundleDays}, nil)
				mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := ctrl.ConnectDevice(ctx, tt.phone, "ab12")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testUser.Phone, res.PhoneNumber)
				assert.Equal(t, md.StatusActive, res.Status)
			}
		})
	}
}

func TestController_CleanupExpiredDevices(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(config.Default(), mockRepo, mockCache)

	tests := []struct {
		name     string
		setup    func()
		expected int64
		wantErr  bool
	}{
		{
			name: "RemovedSome",
			setup: func() {
				mockRepo.EXPECT().
					DeleteExpiredDevices(gomock.Any()).
					Return(int64(3), nil)
			},
			expected: 3,
		},
		{
			name: "RemovedNone",
			setup: func() {
				mockRepo.EXPECT().
					DeleteExpiredDevices(gomock.Any()).
					Return(int64(0), nil)
			},
			expected: 0,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().
					DeleteExpiredDevices(gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := ctrl.CleanupExpiredDevices(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			}
		})
	}
}
