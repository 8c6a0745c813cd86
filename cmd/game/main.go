// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"lane-defense/internal/config"
	"lane-defense/internal/session"
	"lane-defense/internal/state"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	serverURL := flag.String("server", "", "websocket URL of the session service; empty runs a local session")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	var authority session.Authority
	if *serverURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := session.Dial(ctx, *serverURL)
		cancel()
		if err != nil {
			log.Fatalf("connect to session service: %v", err)
		}
		defer client.Close()
		authority = client
	} else {
		authority = session.NewLocal(config.StartingCoins, config.StartingLives)
	}

	fontFace := basicfont.Face7x13

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, authority, fontFace))
	} else {
		sm.SetState(state.NewMenuState(sm, authority, fontFace))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lane Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
