// SPDX-License-Identifier: MIT

// Package handler adapts the router to serverless platforms that invoke a
// single exported http.HandlerFunc per request.
package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/railnet/config"
	"github.com/katalvlaran/railnet/logging"
	"github.com/katalvlaran/railnet/server"
)

var (
	once     sync.Once
	router   *gin.Engine
	buildErr error
)

// Handler serves one request, building the router on first use.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(build)
	if buildErr != nil {
		http.Error(w, `{"error":"internal server error","details":"service unavailable"}`, http.StatusInternalServerError)
		return
	}
	router.ServeHTTP(w, r)
}

func build() {
	cfg, err := config.Load()
	if err != nil {
		buildErr = err
		return
	}
	log, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: logging.FormatJSON})
	if err != nil {
		buildErr = err
		return
	}
	router, buildErr = server.Build(cfg, log)
	if buildErr != nil {
		log.Error("router build failed", "err", buildErr)
	}
}
