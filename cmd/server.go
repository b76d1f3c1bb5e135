package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"

	"habitd/internal/config"
	"habitd/internal/core"
	"habitd/internal/db"
	"habitd/internal/http/handler"
	"habitd/internal/http/handler/middleware"
	"habitd/internal/http/payload"
	"habitd/internal/http/server"
	"habitd/internal/repository"
	"habitd/pkg/jwt"
	"habitd/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("habitd", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService, err := jwt.NewJWTService([]byte(config.JWTSecret), config.JWTAlgorithm)
	if err != nil {
		logger.Errorw("failed to create jwt service", "error", err)
		return err
	}

	// repository
	repo := repository.NewHabitRepository(dbConn)

	err = repo.Migrate()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// habit tracker service
	tracker := core.NewHabitTracker(
		logger,
		repo,
		jwtService,
		config.AccessTokenExpiry,
		config.RefreshTokenExpiry)

	err = tracker.EnsureAdmin(context.Background(), config.AdminUsername, config.AdminPassword)
	if err != nil {
		logger.Errorw("failed to seed admin user", "error", err)
		return err
	}

	// handler
	habitHlr := handler.NewHabitHandler(
		logger,
		payload.DecodeValidator{},
		tracker)

	// register routes
	mux := http.NewServeMux()

	mux.HandleFunc(handler.Register, habitHlr.HandleRegister)
	mux.HandleFunc(handler.Login, habitHlr.HandleLogin)
	mux.HandleFunc(handler.Refresh, habitHlr.HandleRefresh)

	mux.HandleFunc(handler.ListUsers, habitHlr.HandleListUsers)
	mux.HandleFunc(handler.GetUser, habitHlr.HandleGetUser)
	mux.HandleFunc(handler.UpdateUser, habitHlr.HandleUpdateUser)
	mux.HandleFunc(handler.DeleteUser, habitHlr.HandleDeleteUser)

	mux.HandleFunc(handler.ListHabits, habitHlr.HandleListHabits)
	mux.HandleFunc(handler.CreateHabit, habitHlr.HandleCreateHabit)
	mux.HandleFunc(handler.GetHabit, habitHlr.HandleGetHabit)
	mux.HandleFunc(handler.UpdateHabit, habitHlr.HandleUpdateHabit)
	mux.HandleFunc(handler.DeleteHabit, habitHlr.HandleDeleteHabit)
	mux.HandleFunc(handler.SortHabits, habitHlr.HandleSortHabits)
	mux.HandleFunc(handler.ListHabitTrackers, habitHlr.HandleListHabitTrackers)

	mux.HandleFunc(handler.ListTrackers, habitHlr.HandleListTrackers)
	mux.HandleFunc(handler.CreateTracker, habitHlr.HandleCreateTracker)
	mux.HandleFunc(handler.GetTracker, habitHlr.HandleGetTracker)
	mux.HandleFunc(handler.UpdateTracker, habitHlr.HandleUpdateTracker)
	mux.HandleFunc(handler.DeleteTracker, habitHlr.HandleDeleteTracker)

	// middleware
	hdlr := middleware.NewCORSMiddleware(config.CORSOrigins).CORS(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
