// internal/session/client.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client — реализация Authority поверх websocket-соединения с сессионным
// сервисом. Запрос и ответ соотносятся по сквозному номеру: писать может
// несколько вызовов, чтение ведёт одна горутина readPump.
type Client struct {
	conn *websocket.Conn

	writeMu sync.Mutex // WriteJSON не потокобезопасен

	mu      sync.Mutex
	seq     uint64
	pending map[uint64]chan responseEnvelope
	closed  bool
}

// Dial подключается к сессионному сервису по адресу url.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial session authority: %w", err)
	}
	c := &Client{
		conn:    conn,
		pending: make(map[uint64]chan responseEnvelope),
	}
	go c.readPump()
	return c, nil
}

// Close закрывает соединение; все ожидающие запросы получают ошибку.
func (c *Client) Close() error {
	c.mu.Lock()
	c.closed = true
	for seq, ch := range c.pending {
		close(ch)
		delete(c.pending, seq)
	}
	c.mu.Unlock()
	return c.conn.Close()
}

func (c *Client) readPump() {
	for {
		var env responseEnvelope
		if err := c.conn.ReadJSON(&env); err != nil {
			c.mu.Lock()
			c.closed = true
			for seq, ch := range c.pending {
				close(ch)
				delete(c.pending, seq)
			}
			c.mu.Unlock()
			return
		}

		c.mu.Lock()
		ch, ok := c.pending[env.Seq]
		if ok {
			delete(c.pending, env.Seq)
		}
		c.mu.Unlock()

		if !ok {
			log.Printf("session: dropped response with unknown seq %d (%s)", env.Seq, env.Type)
			continue
		}
		ch <- env
	}
}

// request отправляет один запрос и ждёт соотнесённый ответ или отмену контекста.
func (c *Client) request(ctx context.Context, msgType string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", msgType, err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("session connection is closed")
	}
	c.seq++
	seq := c.seq
	ch := make(chan responseEnvelope, 1)
	c.pending[seq] = ch
	c.mu.Unlock()

	c.writeMu.Lock()
	err = c.conn.WriteJSON(requestEnvelope{Type: msgType, Seq: seq, Payload: payload})
	c.writeMu.Unlock()
	if err != nil {
		c.mu.Lock()
		delete(c.pending, seq)
		c.mu.Unlock()
		return fmt.Errorf("failed to send %s request: %w", msgType, err)
	}

	select {
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, seq)
		c.mu.Unlock()
		return ctx.Err()
	case env, ok := <-ch:
		if !ok {
			return fmt.Errorf("session connection closed while waiting for %s", msgType)
		}
		if env.Error != "" {
			return fmt.Errorf("session authority rejected %s: %s", msgType, env.Error)
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(env.Payload, out); err != nil {
			return fmt.Errorf("failed to unmarshal %s response: %w", msgType, err)
		}
		return nil
	}
}

func (c *Client) StartWave(ctx context.Context, wave int) (WaveStart, error) {
	var out WaveStart
	err := c.request(ctx, msgWaveStart, waveStartRequest{Wave: wave}, &out)
	return out, err
}

func (c *Client) RequestPlacement(ctx context.Context, towerDefID, cost int) (PurchaseResult, error) {
	var out PurchaseResult
	err := c.request(ctx, msgPlaceTower, placementRequest{TowerDefID: towerDefID, Cost: cost}, &out)
	return out, err
}

func (c *Client) RequestUpgrade(ctx context.Context, towerDefID, level, cost int) (PurchaseResult, error) {
	var out PurchaseResult
	err := c.request(ctx, msgUpgrade, upgradeRequest{TowerDefID: towerDefID, Level: level, Cost: cost}, &out)
	return out, err
}

func (c *Client) RequestSell(ctx context.Context, towerDefID, level, refund int) (PurchaseResult, error) {
	var out PurchaseResult
	err := c.request(ctx, msgSell, sellRequest{TowerDefID: towerDefID, Level: level, Refund: refund}, &out)
	return out, err
}

func (c *Client) CreditKills(ctx context.Context, kills, reward int) (int, error) {
	var out creditResponse
	err := c.request(ctx, msgCredit, creditRequest{Kills: kills, Reward: reward}, &out)
	return out.Coins, err
}

func (c *Client) ReportLifeLost(ctx context.Context, leaked int) (LivesUpdate, error) {
	var out LivesUpdate
	err := c.request(ctx, msgLifeLost, lifeLostRequest{Leaked: leaked}, &out)
	return out, err
}
