package serial

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, 115200, cfg.Baud)
	assert.Equal(t, 100, cfg.ReadTimeout)
}

func TestMonitorConfigBlocks(t *testing.T) {
	cfg := MonitorConfig("/dev/ttyACM0")
	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, 115200, cfg.Baud)
	assert.Zero(t, cfg.ReadTimeout)
}

func TestOpenNilConfig(t *testing.T) {
	_, err := Open(nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}

func TestTouchOpensAt1200AndCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := NewMockPort(ctrl)
	port.EXPECT().Close().Return(nil)

	var got *Config
	open := func(cfg *Config) (Port, error) {
		got = cfg
		return port, nil
	}

	require.NoError(t, Touch(open, "/dev/ttyACM1"))
	require.NotNil(t, got)
	assert.Equal(t, "/dev/ttyACM1", got.Device)
	assert.Equal(t, TouchBaud, got.Baud)
}

func TestTouchErrors(t *testing.T) {
	openErr := errors.New("busy")
	err := Touch(func(*Config) (Port, error) { return nil, openErr }, "/dev/x")
	assert.ErrorIs(t, err, openErr)

	ctrl := gomock.NewController(t)
	port := NewMockPort(ctrl)
	closeErr := errors.New("gone")
	port.EXPECT().Close().Return(closeErr)

	err = Touch(func(*Config) (Port, error) { return port, nil }, "/dev/x")
	assert.ErrorIs(t, err, closeErr)
}

func TestMonitorCopiesLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := NewMockPort(ctrl)
	gomock.InOrder(
		port.EXPECT().Flush().Return(nil),
		port.EXPECT().Read(gomock.Any()).DoAndReturn(func(b []byte) (int, error) {
			return copy(b, "halt: entry function returned\r\nboot"), nil
		}),
		port.EXPECT().Read(gomock.Any()).DoAndReturn(func(b []byte) (int, error) {
			return copy(b, "ed\n"), nil
		}),
		port.EXPECT().Read(gomock.Any()).Return(0, io.EOF),
	)

	var out bytes.Buffer
	require.NoError(t, Monitor(port, &out))
	assert.Equal(t, "halt: entry function returned\nbooted\n", out.String())
}

func TestMonitorSurvivesQuietReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := NewMockPort(ctrl)
	gomock.InOrder(
		port.EXPECT().Flush().Return(nil),
		port.EXPECT().Read(gomock.Any()).DoAndReturn(func(b []byte) (int, error) {
			return copy(b, "boot"), nil
		}),
		port.EXPECT().Read(gomock.Any()).Return(0, nil).Times(5),
		port.EXPECT().Read(gomock.Any()).DoAndReturn(func(b []byte) (int, error) {
			return copy(b, "ed\nhalt: unhandled exception\n"), nil
		}),
		port.EXPECT().Read(gomock.Any()).Return(0, io.EOF),
	)

	var out bytes.Buffer
	require.NoError(t, Monitor(port, &out))
	assert.Equal(t, "booted\nhalt: unhandled exception\n", out.String())
}

func TestMonitorFlushError(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := NewMockPort(ctrl)
	flushErr := errors.New("port gone")
	port.EXPECT().Flush().Return(flushErr)

	var out bytes.Buffer
	assert.ErrorIs(t, Monitor(port, &out), flushErr)
	assert.Zero(t, out.Len())
}
