package serve

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/glentner/1trc/internal/builder/cli/utils"
	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/usecase"
)

func setupRoutes(opts handlerOptions, e *echo.Echo) {
	e.GET("/status/:taskID", toEchoHandler(opts, handleStatus), rejectRequestWithBody)

	post := e.Group("", rejectRequestWithMissingLength, middleware.BodyLimit("1M"))
	post.POST("/build", toEchoHandler(opts, handleBuild))
	post.POST("/validate", toEchoHandler(opts, handleValidate))
}

// handleBuild handler for endpoint 'build'.
func handleBuild(opts handlerOptions, c echo.Context) error {
	body, err := getRequestBody(c)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusInternalServerError,
			response{
				Message: "Unable to read request body",
				Error:   err.Error(),
			},
		)
	}

	var buildConfig models.BuildConfig

	err = buildConfig.ParseFromJSON(body)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusBadRequest,
			response{
				Message: "Build request is not valid",
				Error:   err.Error(),
			},
		)
	}

	// The build outlives the request, so it must not stop when the
	// handler returns and the request context is canceled.
	taskID, err := opts.useCase.CreateTask(
		context.WithoutCancel(c.Request().Context()), usecase.TaskConfig{
			BuildConfig:  &buildConfig,
			HTTPDelivery: true,
		},
	)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusInternalServerError,
			response{
				Message: "Failed to start build",
				Error:   err.Error(),
			},
		)
	}

	return sendResponse(
		c,
		"string",
		http.StatusOK,
		taskID,
	)
}

// handleValidate handler for endpoint 'validate'.
func handleValidate(_ handlerOptions, c echo.Context) error {
	body, err := getRequestBody(c)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusInternalServerError,
			response{
				Message: "Unable to read request body",
				Error:   err.Error(),
			},
		)
	}

	var buildConfig models.BuildConfig

	err = buildConfig.ParseFromJSON(body)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusBadRequest,
			response{
				Message: "Build request is not valid",
				Error:   err.Error(),
			},
		)
	}

	return sendResponse(
		c,
		"json",
		http.StatusOK,
		response{
			Message: "Build request is valid",
		},
	)
}

// handleStatus handler for endpoint 'status'.
func handleStatus(opts handlerOptions, c echo.Context) error {
	taskID := c.Param("taskID")

	finished, result, err := opts.useCase.GetResult(taskID)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusInternalServerError,
			response{
				Message: "Failed to retrieve build result",
				Error:   err.Error(),
			},
		)
	}

	if finished {
		if resultErr := result.Err(); resultErr != nil {
			return sendResponse(
				c,
				"json",
				http.StatusOK,
				response{
					Message: "Build finished with errors",
					Error:   resultErr.Error(),
				},
			)
		}

		return sendResponse(
			c,
			"json",
			http.StatusOK,
			response{
				Message: "Build completed successfully",
			},
		)
	}

	progress, err := opts.useCase.GetProgress(taskID)
	if err != nil {
		return sendResponse(
			c,
			"json",
			http.StatusInternalServerError,
			response{
				Message: "Failed to retrieve build progress",
				Error:   err.Error(),
			},
		)
	}

	return sendResponse(
		c,
		"json",
		http.StatusOK,
		statusResponse{
			Finished:   false,
			Percentage: utils.GetPercentage(progress.Total, progress.Done),
			Done:       progress.Done,
			Total:      progress.Total,
		},
	)
}
