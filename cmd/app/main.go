package main

import (
	"os"
	"os/signal"
	"syscall"

	"PoseGolang/internal/config"
	"PoseGolang/pkg/blazepose"
	"PoseGolang/pkg/log"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = "pose_landmarker_full.onnx"
	}
	poseManager := blazepose.NewManager(logger, modelPath, os.Getenv("MODEL_URL"))

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMiddleware(),
		config.WithBlazepose(poseManager),
		config.WithImaging(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	// Charge the one-time model cost to startup, not the first request.
	poseManager.WarmUp()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
