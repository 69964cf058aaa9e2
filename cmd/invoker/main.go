package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invoker/audio"
	"github.com/lixenwraith/invoker/constants"
	"github.com/lixenwraith/invoker/engine"
	"github.com/lixenwraith/invoker/input"
	"github.com/lixenwraith/invoker/modes"
	"github.com/lixenwraith/invoker/render"
	"github.com/lixenwraith/invoker/settings"
)

var (
	configFlag   = flag.String("config", "", "Settings file (default: <user config dir>/invoker/settings.ini)")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/invoker.log")
	settingsFlag = flag.Bool("settings", false, "Start on the settings screen")
	seedFlag     = flag.Int64("seed", 0, "Random seed; 0 seeds from the clock")
	muteFlag     = flag.Bool("mute", false, "Disable sound for this session")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "invoker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := *configFlag
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := settings.Load(path)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("invoker: settings=%s seed=%d", path, seed)

	sound := audio.NewSoundManager(audio.ConfigFromSettings(cfg.Sound))
	if *muteFlag {
		sound.SetEnabled(false)
	}
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without sound)", err)
	} else {
		defer sound.Cleanup()
	}

	opts := []modes.Option{
		modes.WithFeedback(sound),
		modes.WithSaver(func(s settings.Settings) error {
			sound.SetEnabled(s.Sound.Enabled && !*muteFlag)
			return settings.Save(path, s)
		}),
	}
	if *settingsFlag {
		opts = append(opts, modes.WithInitial(modes.KindSettings))
	}

	machine, err := modes.NewMachine(cfg, rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mINVOKER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	return loop(screen, machine, input.NewMapper(cfg.Keys))
}

// loop owns the machine: events and frame ticks are handled on this goroutine
func loop(screen tcell.Screen, machine *modes.Machine, mapper *input.Mapper) error {
	renderer := render.NewRenderer(screen)
	clock := engine.NewFrameClock(engine.SystemTime{})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, constants.EventChannelSize)
	go pollEvents(screen, events)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			quit, err := dispatch(ev, machine, mapper, renderer)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

		case <-ticker.C:
			if err := machine.Update(clock.Tick()); err != nil {
				return err
			}
			renderer.Draw(machine.Snapshot())
			screen.Show()
		}

		if machine.Quit() {
			return nil
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer close(events)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// dispatch delivers one terminal event to the machine
// quit is true when the event requests exit outside the mode machine
func dispatch(ev tcell.Event, machine *modes.Machine, mapper *input.Mapper, renderer *render.Renderer) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, interrupt := mapper.MapKey(ev)
		if interrupt {
			log.Printf("input: interrupt")
			return true, nil
		}
		return false, machine.HandleKey(key)

	case *tcell.EventMouse:
		click, ok := mapper.MapMouse(ev)
		if !ok {
			return false, nil
		}
		layout := renderer.Layout(machine.Settings().Field)
		if click.Row >= layout.PlayRows() {
			return false, nil
		}
		x, y := layout.ToField(click.Col, click.Row)
		return false, machine.HandleClick(click.Button, x, y)
	}
	return false, nil
}
