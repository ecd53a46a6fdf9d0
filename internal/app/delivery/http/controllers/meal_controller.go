package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"messmenu-service/internal/app/contracts"
	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/constvars"
	"messmenu-service/internal/pkg/exceptions"
	"messmenu-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type MealController struct {
	Log         *zap.Logger
	MenuUsecase contracts.MenuUsecase
}

var (
	mealControllerInstance *MealController
	onceMealController     sync.Once
)

func NewMealController(logger *zap.Logger, menuUsecase contracts.MenuUsecase) *MealController {
	onceMealController.Do(func() {
		instance := &MealController{
			Log:         logger,
			MenuUsecase: menuUsecase,
		}
		mealControllerInstance = instance
	})
	return mealControllerInstance
}

func (ctrl *MealController) GetCurrentMeal(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MealController.GetCurrentMeal requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MenuUsecase.GetCurrentMeal(ctx, time.Now())
	if err != nil {
		ctrl.Log.Error("MealController.GetCurrentMeal error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.GetCurrentMealSuccess
	if response.State == nil {
		message = constvars.MenuSyncPending
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *MealController) GetWeekMenu(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MealController.GetWeekMenu requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MenuUsecase.GetWeekMenu(ctx)
	if err != nil {
		ctrl.Log.Error("MealController.GetWeekMenu error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.GetWeekMenuSuccess
	if response.SyncState == models.SyncStateNoData || response.SyncState == models.SyncStateSyncing {
		message = constvars.MenuSyncPending
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *MealController) RefreshMenu(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MealController.RefreshMenu requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MealController.RefreshMenu called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.MenuUsecase.RefreshMenu(ctx)
	if err != nil {
		ctrl.Log.Error("MealController.RefreshMenu error from usecase",
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

	ctrl.Log.Info("MealController.RefreshMenu succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWeekStartKey, response.WeekStart),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshMenuSuccess, response)
}
