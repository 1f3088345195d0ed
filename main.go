package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	catalogx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/catalog"
	negotiatex "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/negotiate"
	promptx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/prompt"
	storefrontx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/storefront"
	"github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/api"
	configx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/pkg/config"
	groqx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/pkg/groq"
	_ "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/pkg/logger/autoload"
)

type AppConfig struct {
	Addr        string        `envconfig:"ADDR" default:":8000"`
	TurnBudget  int           `envconfig:"NEGOTIATION_TURN_BUDGET" default:"2"`
	CallTimeout time.Duration `envconfig:"NEGOTIATION_CALL_TIMEOUT" default:"120s"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")
	groqCfg := configx.MustNew[groqx.Config]("GROQ")

	groqClient := groqx.NewClient(*groqCfg)
	if groqClient == nil {
		panic("failed to initialize groq client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	chatModel, err := groqCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("create chat model")
	}

	gen, err := negotiatex.NewModelGenerator(chatModel)
	if err != nil {
		log.Fatal().Err(err).Msg("create model generator")
	}

	catalog := catalogx.New(promptx.LoadPromptSet())

	engine, err := negotiatex.New(catalog, gen, negotiatex.Config{
		TurnBudget:  appCfg.TurnBudget,
		CallTimeout: appCfg.CallTimeout,
		AILabel:     groqCfg.Label(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create negotiation engine")
	}

	srv, err := api.New(catalog, engine, storefrontx.NewHub(catalog))
	if err != nil {
		log.Fatal().Err(err).Msg("create api server")
	}

	httpSrv := &http.Server{
		Addr:              appCfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", appCfg.Addr).Str("model", groqCfg.Model).Msg("marketplace listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}
}
