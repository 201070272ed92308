// Command streetlight polls the ambient-light and motion sensors, drives
// the street lamp, and renders a 16x2 status display. A software clock
// seeded at a fixed time tags sunrise/sunset transitions, which are held
// on the display and published to MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aymanmw1/streetlight/internal/clock"
	"github.com/aymanmw1/streetlight/internal/config"
	"github.com/aymanmw1/streetlight/internal/display"
	"github.com/aymanmw1/streetlight/internal/gpio"
	"github.com/aymanmw1/streetlight/internal/logic"
	"github.com/aymanmw1/streetlight/internal/mqtt"
	"github.com/aymanmw1/streetlight/internal/status"
	"github.com/aymanmw1/streetlight/internal/web"
)

func main() {
	configPath := flag.String("config", ".", "Directory containing streetlight.yaml")
	printState := flag.Bool("print-state", false, "Print current sensor state and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(cfg, *printState, time.Sleep); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg config.Config, printState bool, sleep func(time.Duration)) error {
	// Initialize GPIO
	sampler, err := gpio.NewRealSampler(cfg.Pins.LDR, cfg.Pins.PIR)
	if err != nil {
		return fmt.Errorf("init sampler: %w", err)
	}
	defer sampler.Close()

	// Print state mode
	if printState {
		night, motion, err := sampler.Sample()
		if err != nil {
			return fmt.Errorf("read sensors: %w", err)
		}
		fmt.Printf("Ambient: %s, Motion: %s\n", dayNight(night), yesNo(motion))
		return nil
	}

	lamp, err := gpio.NewRealLamp(cfg.Pins.Lamp)
	if err != nil {
		return fmt.Errorf("init lamp: %w", err)
	}
	defer lamp.Close()

	seed, err := cfg.SeedTime()
	if err != nil {
		return fmt.Errorf("seed time: %w", err)
	}
	clk := clock.New(seed)

	screen, closeScreen, err := newScreen(cfg)
	if err != nil {
		return err
	}
	defer closeScreen()

	// Initialize MQTT
	var publisher mqtt.Publisher
	var mqttStatus mqtt.ConnectionStatus
	if cfg.Broker != "" {
		real := mqtt.NewRealPublisher(cfg.Broker)
		defer real.Close()
		publisher = real
		mqttStatus = real
	}

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      cfg.Poll.Milliseconds(),
		TickMs:      cfg.Tick.Milliseconds(),
		DwellMs:     cfg.Dwell.Milliseconds(),
		HeartbeatMs: cfg.Heartbeat.Milliseconds(),
		Seed:        cfg.Seed,
		Broker:      cfg.Broker,
		HTTPAddr:    cfg.HTTPAddr,
	})
	tracker.Update(logic.SensorFrame{}, logic.Decide(logic.SensorFrame{}), clk.Now())

	// Publish startup event with full status snapshot
	if publisher != nil {
		snap := tracker.Snapshot()
		startupEvent := mqtt.SystemEvent{
			Timestamp:  snap.Now,
			Event:      "STARTUP",
			Retained:   true,
			RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
		}
		if err := publisher.PublishSystem(startupEvent); err != nil {
			log.Printf("failed to publish startup event: %v", err)
		} else {
			log.Printf("published startup event")
		}
	}

	// Start HTTP status server
	if cfg.HTTPAddr != "" {
		srv := web.New(cfg.HTTPAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", cfg.HTTPAddr)
	}

	// Startup banner
	showBanner(screen, cfg.BannerDwell, sleep)

	log.Printf("started: poll=%v tick=%v seed=%s dwell=%v broker=%s",
		cfg.Poll, cfg.Tick, cfg.Seed, cfg.Dwell, cfg.Broker)

	// Clock tick source: the hosted stand-in for the timer interrupt.
	// Single writer; the control loop only reads.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tickTicker := time.NewTicker(cfg.Tick)
	defer tickTicker.Stop()
	go clk.Run(ctx, tickTicker.C)

	pollTicker := time.NewTicker(cfg.Poll)
	defer pollTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var logger *logic.TransitionLogger
	if cfg.LogTransitions {
		logger = logic.NewTransitionLogger()
	}

	l := loop{
		sampler:    sampler,
		lamp:       lamp,
		screen:     screen,
		publisher:  publisher,
		mqttStatus: mqttStatus,
		tracker:    tracker,
		clk:        clk,
		logger:     logger,
		dwell:      cfg.Dwell,
		heartbeat:  cfg.Heartbeat,
	}
	return runLoop(l, time.Now, sleep, pollTicker.C, sigCh)
}

// newScreen builds the configured display backend. The returned func
// releases any underlying hardware.
func newScreen(cfg config.Config) (*display.Renderer, func(), error) {
	switch cfg.Display.Backend {
	case config.DisplayLCD:
		lcd, err := display.OpenLCD(cfg.Display.I2CBus, uint8(cfg.Display.I2CAddr))
		if err != nil {
			return nil, nil, fmt.Errorf("init lcd: %w", err)
		}
		return display.NewRenderer(lcd), func() {
			if err := lcd.Close(); err != nil {
				log.Printf("close lcd: %v", err)
			}
		}, nil
	default:
		return display.NewRenderer(display.NewConsole(os.Stdout)), func() {}, nil
	}
}

// showBanner holds the startup banner on the glass, then wipes it.
func showBanner(screen *display.Renderer, dwell time.Duration, sleep func(time.Duration)) {
	if err := screen.ShowBanner(); err != nil {
		log.Printf("display error: %v", err)
	}
	sleep(dwell)
	if err := screen.Clear(); err != nil {
		log.Printf("display error: %v", err)
	}
}

// loop bundles the control loop's collaborators.
type loop struct {
	sampler    gpio.Sampler
	lamp       gpio.Lamp
	screen     *display.Renderer
	publisher  mqtt.Publisher        // nil disables MQTT
	mqttStatus mqtt.ConnectionStatus // nil when MQTT disabled
	tracker    *status.Tracker
	clk        *clock.Clock
	logger     *logic.TransitionLogger // nil disables transition logging
	dwell      time.Duration
	heartbeat  time.Duration
}

// runLoop is the control loop: one strictly sequential iteration per
// tick, running until a signal arrives. Each iteration samples the
// sensors, feeds the transition logger, computes and applies the lamp
// command, and repaints the status screen. A transition event blocks the
// loop for the dwell while the sunrise/sunset screen is held — sensor
// polling pauses for its duration, which is acceptable because
// transitions happen at most twice a day.
func runLoop(l loop, now func() time.Time, sleep func(time.Duration), tick <-chan time.Time, sig <-chan os.Signal) error {
	startTime := now()
	lastHeartbeat := startTime

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			if l.publisher != nil {
				event := mqtt.SystemEvent{
					Timestamp: now(),
					Event:     "SHUTDOWN",
					Reason:    signalName,
					Retained:  true,
				}
				if l.tracker != nil {
					if l.mqttStatus != nil {
						l.tracker.SetMQTTConnected(l.mqttStatus.IsConnected())
					}
					snap := l.tracker.Snapshot()
					event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName)
				}
				if err := l.publisher.PublishSystem(event); err != nil {
					log.Printf("failed to publish shutdown event: %v", err)
				} else {
					log.Printf("published shutdown event")
				}
			}
			return nil

		case <-tick:
			t := now()
			night, motion, err := l.sampler.Sample()
			if err != nil {
				log.Printf("sensor read error: %v", err)
				continue
			}
			frame := logic.SensorFrame{IsNight: night, Motion: motion}

			if l.logger != nil {
				if event := l.logger.Observe(night, l.clk.Now()); event != nil {
					log.Printf("event: %s at %s", event.Kind, event.Time)
					if l.publisher != nil {
						if err := l.publisher.PublishTransition(*event, t); err != nil {
							log.Printf("publish error: %v", err)
							// Don't crash on publish failure
						}
					}
					sunrise, sunset := l.logger.Times()
					if err := l.screen.ShowTransitions(sunrise, sunset); err != nil {
						log.Printf("display error: %v", err)
					}
					sleep(l.dwell)
					if err := l.screen.Clear(); err != nil {
						log.Printf("display error: %v", err)
					}
				}
			}

			cmd := logic.Decide(frame)
			if err := l.lamp.Set(cmd.LampOn); err != nil {
				log.Printf("lamp write error: %v", err)
			}
			if err := l.screen.ShowStatus(frame, cmd); err != nil {
				log.Printf("display error: %v", err)
			}

			if l.tracker != nil {
				l.tracker.Update(frame, cmd, l.clk.Now())
				if l.logger != nil {
					sunrise, sunset := l.logger.Times()
					l.tracker.UpdateTransitions(l.logger.Seeded(), sunrise, sunset, l.logger.Counts())
				}
				if l.mqttStatus != nil {
					l.tracker.SetMQTTConnected(l.mqttStatus.IsConnected())
				}
			}

			// Heartbeat
			if l.heartbeat > 0 && t.Sub(lastHeartbeat) >= l.heartbeat {
				lastHeartbeat = t
				log.Printf("heartbeat: uptime=%v clock=%s sunrise=%d sunset=%d",
					t.Sub(startTime).Truncate(time.Second), l.clk.Now(), countsOf(l.logger).Sunrise, countsOf(l.logger).Sunset)

				if l.publisher != nil {
					hbEvent := mqtt.SystemEvent{
						Timestamp: t,
						Event:     "HEARTBEAT",
					}
					if l.tracker != nil {
						snap := l.tracker.Snapshot()
						hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
					}
					if err := l.publisher.PublishSystem(hbEvent); err != nil {
						log.Printf("heartbeat publish error: %v", err)
					}
				}
			}
		}
	}
}

func countsOf(logger *logic.TransitionLogger) logic.EventCounts {
	if logger == nil {
		return logic.EventCounts{}
	}
	return logger.Counts()
}

func dayNight(isNight bool) string {
	if isNight {
		return "NIGHT"
	}
	return "DAY"
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
