package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sublee/enumjson/pkg/enumjsonerrors"
)

//go:generate go run github.com/sublee/enumjson/cmd/enumjson

// JobStatus is the progress of a job.
//
//enumjson:generate TrimPrefix CamelCase TextMarshaler PropertyName="status"
//enumjson:converter JobStatusConverter
type JobStatus int

type JobStatusConverter struct{}

const (
	JobStatusTodo JobStatus = iota
	JobStatusInProgress

	//enumjson:display Name="finished"
	JobStatusDone
)

type Job struct {
	ID     int       `json:"id"`
	Title  string    `json:"title"`
	Status JobStatus `json:"status"`
}

func newServer() *echo.Echo {
	e := echo.New()
	e.GET("/statuses", listStatuses)
	e.POST("/jobs", createJob)
	return e
}

func main() {
	e := newServer()
	e.Logger.Fatal(e.Start(":8080"))
}

func listStatuses(c echo.Context) error {
	return c.JSON(http.StatusOK, JobStatusConverter{}.Labels())
}

func createJob(c echo.Context) error {
	var job Job
	if err := c.Bind(&job); err != nil {
		var decodeErr *enumjsonerrors.DecodeError
		if errors.As(err, &decodeErr) {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error":   decodeErr.Error(),
				"allowed": decodeErr.Labels,
			})
		}
		return err
	}
	return c.JSON(http.StatusCreated, job)
}
