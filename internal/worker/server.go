package worker

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/mailer"
	"github.com/adithya2152/devconnect/internal/repository"
	"github.com/adithya2152/devconnect/internal/tasks"
)

// WorkerServer wraps the asynq server and its task handlers.
type WorkerServer struct {
	server        *asynq.Server
	log           *logrus.Entry
	notifications repository.NotificationRepository
	mail          *mailer.Mailer
}

func NewWorkerServer(redisOpt asynq.RedisClientOpt, notifications repository.NotificationRepository, mail *mailer.Mailer, logger *logrus.Logger) *WorkerServer {
	logEntry := logger.WithField("component", "worker_server")

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				taskID := ""
				if rw := task.ResultWriter(); rw != nil {
					taskID = rw.TaskID()
				}
				retryCount, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				logEntry.WithFields(logrus.Fields{
					"task_id":   taskID,
					"task_type": task.Type(),
					"retries":   retryCount,
					"max_retry": maxRetry,
				}).Errorf("Task failed: %v", err)
			}),
		},
	)

	return &WorkerServer{
		server:        server,
		log:           logEntry,
		notifications: notifications,
		mail:          mail,
	}
}

// Start runs the worker server. Call it from its own goroutine.
func (ws *WorkerServer) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotificationDeliver, NewNotificationDeliveryHandler(ws.notifications).ProcessTask)
	mux.HandleFunc(tasks.TypeOTPEmail, NewOTPEmailHandler(ws.mail).ProcessTask)

	ws.log.Info("Worker server starting...")
	if err := ws.server.Run(mux); err != nil {
		if !errors.Is(err, asynq.ErrServerClosed) {
			ws.log.Fatalf("Could not run worker server: %v", err)
		} else {
			ws.log.Info("Worker server stopped.")
		}
	}
}

// Shutdown stops the worker server gracefully.
func (ws *WorkerServer) Shutdown() {
	ws.log.Info("Shutting down worker server...")
	ws.server.Shutdown()
	ws.log.Info("Worker server shut down complete.")
}
