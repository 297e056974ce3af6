package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"devicequote/config"
	mockUsecase "devicequote/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/fx/fxtest"
)

func TestRegisterRecoveryPurger_RunsUntilStopped(t *testing.T) {
	recovery := mockUsecase.NewMockRecoveryUsecase(t)
	lc := fxtest.NewLifecycle(t)

	var calls atomic.Int32
	recovery.EXPECT().
		PurgeExpired(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			calls.Add(1)

			return 0, nil
		})

	RegisterRecoveryPurger(RecoveryPurgerParams{
		Lc:       lc,
		Recovery: recovery,
		Config:   &config.Config{Recovery: &config.RecoveryConfig{PurgeInterval: 5 * time.Millisecond}},
		Logger:   discardLogger(),
	})

	lc.RequireStart()
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	lc.RequireStop()

	stopped := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())
}
