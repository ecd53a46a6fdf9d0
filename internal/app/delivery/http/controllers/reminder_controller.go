package controllers

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"messmenu-service/internal/app/contracts"
	"messmenu-service/internal/pkg/constvars"
	"messmenu-service/internal/pkg/dto/requests"
	"messmenu-service/internal/pkg/exceptions"
	"messmenu-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReminderController struct {
	Log             *zap.Logger
	ReminderUsecase contracts.ReminderUsecase
}

var (
	reminderControllerInstance *ReminderController
	onceReminderController     sync.Once
)

func NewReminderController(logger *zap.Logger, reminderUsecase contracts.ReminderUsecase) *ReminderController {
	onceReminderController.Do(func() {
		instance := &ReminderController{
			Log:             logger,
			ReminderUsecase: reminderUsecase,
		}
		reminderControllerInstance = instance
	})
	return reminderControllerInstance
}

func (ctrl *ReminderController) PlanReminders(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ReminderController.PlanReminders requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := &requests.PlanReminders{
		Mode: r.URL.Query().Get("mode"),
	}
	if rawHorizon := r.URL.Query().Get("horizon"); rawHorizon != "" {
		horizon, err := strconv.Atoi(rawHorizon)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidHorizon(err))
			return
		}
		request.HorizonDays = horizon
	}

	if request.Mode != "" {
		if err := utils.ValidateStruct(request); err != nil {
			ctrl.Log.Error("ReminderController.PlanReminders validation error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ReminderUsecase.PlanReminders(ctx, request, time.Now())
	if err != nil {
		ctrl.Log.Error("ReminderController.PlanReminders error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PlanRemindersSuccess, response)
}

func (ctrl *ReminderController) DispatchReminders(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ReminderController.DispatchReminders requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ReminderController.DispatchReminders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.DispatchReminders)
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			ctrl.Log.Error("ReminderController.DispatchReminders error decoding JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
		if request.Mode != "" {
			if err := utils.ValidateStruct(request); err != nil {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
				return
			}
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ReminderUsecase.DispatchReminders(ctx, request, time.Now())
	if err != nil {
		ctrl.Log.Error("ReminderController.DispatchReminders error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ReminderController.DispatchReminders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("set_id", response.SetID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DispatchRemindersSuccess, response)
}
