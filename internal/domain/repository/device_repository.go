// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"devicequote/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no device row exists for an id.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository reads seeded device reference data.
type DeviceRepository interface {
	// FindDeviceByID retrieves a device by its slug.
	FindDeviceByID(ctx context.Context, id string) (*entity.Device, error)

	// ListDevices returns every device ordered by id.
	ListDevices(ctx context.Context) ([]*entity.Device, error)
}
