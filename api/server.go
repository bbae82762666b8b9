package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/dan13ram/ada-bridge/app"
	"github.com/dan13ram/ada-bridge/models"
	"github.com/dan13ram/ada-bridge/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const (
	APIServerName   = "API"
	shutdownTimeout = 5 * time.Second
)

type HealthFunc func() models.Health

type Server struct {
	server *http.Server
	wg     *sync.WaitGroup
	health HealthFunc

	mu        sync.RWMutex
	healthy   bool
	lastError string
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(started).String(),
		}).Debug("[API] Request served")
	}
}

func errorResponse(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// NewRouter registers the health, metrics and record routes.
func NewRouter(health HealthFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", func(c *gin.Context) {
		h := health()
		status := http.StatusOK
		if !h.Healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, h)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/locks", listLocks)
	router.GET("/locks/:tx_id", getLock)
	router.GET("/unlocks", listUnlocks)
	router.GET("/unlocks/:ckb_tx_hash", getUnlock)

	return router
}

func listLocks(c *gin.Context) {
	var records []models.LockRecord
	var err error

	if recipient := c.Query("recipient"); recipient != "" {
		records, err = store.LockRecordsByRecipient(recipient)
	} else if sender := c.Query("sender"); sender != "" {
		records, err = store.LockRecordsBySender(sender)
	} else {
		errorResponse(c, http.StatusBadRequest, errors.New("recipient or sender is required"))
		return
	}

	if err != nil {
		log.Error("[API] Error finding lock records: ", err)
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func listUnlocks(c *gin.Context) {
	var records []models.UnlockRecord
	var err error

	if recipient := c.Query("recipient"); recipient != "" {
		records, err = store.UnlockRecordsByRecipient(recipient)
	} else if lockHash := c.Query("sender_lock_hash"); lockHash != "" {
		records, err = store.UnlockRecordsBySenderLockHash(lockHash)
	} else {
		errorResponse(c, http.StatusBadRequest, errors.New("recipient or sender_lock_hash is required"))
		return
	}

	if err != nil {
		log.Error("[API] Error finding unlock records: ", err)
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func getLock(c *gin.Context) {
	lock, err := store.FindLockByKey(c.Param("tx_id"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	if lock == nil {
		errorResponse(c, http.StatusNotFound, errors.New("lock not found"))
		return
	}
	c.JSON(http.StatusOK, lock)
}

func getUnlock(c *gin.Context) {
	unlock, err := store.FindUnlockByKey(c.Param("ckb_tx_hash"))
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err)
		return
	}
	if unlock == nil {
		errorResponse(c, http.StatusNotFound, errors.New("unlock not found"))
		return
	}
	c.JSON(http.StatusOK, unlock)
}

func (x *Server) Start() {
	defer x.wg.Done()

	log.Info("[API] Listening on ", x.server.Addr)
	err := x.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("[API] Error serving: ", err)
		x.mu.Lock()
		x.healthy = false
		x.lastError = err.Error()
		x.mu.Unlock()
	}
}

func (x *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := x.server.Shutdown(ctx); err != nil {
		log.Error("[API] Error shutting down: ", err)
	}
	log.Info("[API] Stopped server")
}

func (x *Server) Health() models.ServiceHealth {
	x.mu.RLock()
	defer x.mu.RUnlock()

	now := time.Now()
	return models.ServiceHealth{
		Name:         APIServerName,
		LastSyncTime: now,
		NextSyncTime: now,
		Healthy:      x.healthy,
		LastError:    x.lastError,
	}
}

func NewServer(wg *sync.WaitGroup, health HealthFunc) app.Service {
	if !app.Config.API.Enabled {
		log.Debug("[API] Disabled")
		return app.NewEmptyService(wg)
	}

	gin.SetMode(gin.ReleaseMode)

	return &Server{
		server: &http.Server{
			Addr:              app.Config.API.ListenAddress,
			Handler:           NewRouter(health),
			ReadHeaderTimeout: 10 * time.Second,
		},
		wg:      wg,
		health:  health,
		healthy: true,
	}
}
