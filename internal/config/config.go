package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Dev           bool          `envconfig:"DEV" default:"false"`
	BotToken      string        `envconfig:"BOT_TOKEN"`
	TokenSSMParam string        `envconfig:"TOKEN_SSM_PARAM"`
	AdminID       int64         `envconfig:"ADMIN_ID" required:"true"`
	DatabaseURL   string        `envconfig:"DATABASE_URL" required:"true"`
	PublicURL     string        `envconfig:"PUBLIC_URL"`
	Port          int           `envconfig:"PORT" default:"3000"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"60s"`
	PingInterval  time.Duration `envconfig:"PING_INTERVAL" default:"5m"`
}

// New reads configuration from the environment. When BOT_TOKEN is not set and
// TOKEN_SSM_PARAM is, the token is fetched from AWS SSM Parameter Store.
func New(ctx context.Context) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if res.BotToken == "" && res.TokenSSMParam != "" {
		res.BotToken, err = getSSMToken(ctx, res.TokenSSMParam)
		if err != nil {
			return nil, err
		}
	}

	if res.BotToken == "" {
		return nil, errors.New("bot token is required")
	}

	return res, nil
}

func getSSMToken(ctx context.Context, name string) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter.Value == nil {
		return "", errors.New("SSM token not found")
	}

	return *param.Parameter.Value, nil
}
