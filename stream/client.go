package stream

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/easecalc/config"
	"github.com/matt-g-everett/easecalc/logger"
)

const connectTimeout = 10 * time.Second

// NewClient connects to the broker described by cfg.
func NewClient(cfg config.Mqtt) (mqtt.Client, error) {
	if logger.Logger != nil {
		mqtt.ERROR = logger.Logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel})
		mqtt.CRITICAL = mqtt.ERROR
	}

	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			logger.Info("connected", "broker", cfg.URL)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn("connection lost", "broker", cfg.URL, "err", err)
		})
	client := mqtt.NewClient(options)

	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connecting to %s: timed out after %v", cfg.URL, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.URL, err)
	}

	return client, nil
}
