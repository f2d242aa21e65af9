package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phinze/controlpanel/internal/config"
	"github.com/phinze/controlpanel/internal/deck"
	"github.com/phinze/controlpanel/internal/device"
	"github.com/spf13/cobra"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Drive the control panel from a Stream Deck Plus touch strip",
	RunE:  runDeck,
}

func runDeck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log.Println("=== Control Panel (Stream Deck) ===")
	log.Println("Press Ctrl+C to exit")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Main device loop - wait for device, run, repeat on disconnect
	for {
		dev := waitForHardwareDevice(ctx)
		if dev == nil {
			// Context cancelled
			return nil
		}

		// USB enumeration may not be complete right after the device opens.
		time.Sleep(500 * time.Millisecond)

		if err := runWithDevice(ctx, cfg, dev); err != nil {
			if errors.Is(err, deck.ErrNoTouchStrip) {
				return err
			}
			log.Printf("Device disconnected: %v", err)
		}

		select {
		case <-ctx.Done():
			log.Println("Exiting...")
			return nil
		default:
			log.Println("Waiting for device reconnect...")
		}
	}
}

// tryGetDeviceWithTimeout attempts to find and open a Stream Deck with a
// timeout, since a wedged USB subsystem can block indefinitely.
func tryGetDeviceWithTimeout(timeout time.Duration) *device.Hardware {
	opened := make(chan *device.Hardware, 1)

	go func() {
		dev, err := device.Find()
		if err == nil {
			err = dev.Open()
		}
		if err != nil {
			opened <- nil
			return
		}
		opened <- dev
	}()

	select {
	case dev := <-opened:
		return dev
	case <-time.After(timeout):
		log.Println("Device detection timed out")
		// Close a device that opens after the deadline.
		go func() {
			if dev := <-opened; dev != nil {
				dev.Close()
			}
		}()
		return nil
	}
}

// waitForHardwareDevice polls for a Stream Deck until one is available or ctx
// is cancelled.
func waitForHardwareDevice(ctx context.Context) device.Device {
	const deviceTimeout = 5 * time.Second

	if dev := tryGetDeviceWithTimeout(deviceTimeout); dev != nil {
		return dev
	}

	log.Println("Waiting for device...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(2 * time.Second):
		}

		if dev := tryGetDeviceWithTimeout(deviceTimeout); dev != nil {
			log.Println("Device connected!")
			return dev
		}
	}
}

// runWithDevice hosts the panel on dev until disconnect or ctx cancel.
func runWithDevice(ctx context.Context, cfg *config.Config, dev device.Device) error {
	log.Printf("Connected to: %s", dev.GetModelName())

	p, err := newPanel(cfg)
	if err != nil {
		dev.Close()
		return err
	}

	host := deck.New(dev, p, deck.Options{
		StripX:     cfg.Deck.StripX,
		Key:        device.KeyID(cfg.Deck.Key),
		Brightness: byte(cfg.Deck.Brightness),
		Flash:      150 * time.Millisecond,
	})

	runCtx, runCancel := context.WithCancel(ctx)
	defer runCancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- host.Start(runCtx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Println("Shutting down...")
	case runErr = <-errChan:
	}

	runCancel()

	done := make(chan struct{})
	go func() {
		if err := host.Stop(); err != nil {
			log.Printf("Error stopping deck host: %v", err)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		log.Println("Cleanup timed out")
	}

	// device.Close may block when the device vanished mid-transfer.
	closeDone := make(chan struct{})
	go func() {
		dev.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(3 * time.Second):
		log.Println("Device close timed out")
	}
	return runErr
}
