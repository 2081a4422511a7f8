package api

import (
	"net/http"

	reqdto "booking-engine/internal/handler/dto/request"
	resdto "booking-engine/internal/handler/dto/response"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SlotLockHandler struct {
	cmds commands.SlotLockCommands
}

func NewSlotLockHandler(cmds commands.SlotLockCommands) *SlotLockHandler {
	return &SlotLockHandler{cmds: cmds}
}

// @Summary Lock a slot
// @Description Hold a slot for the caller while checkout completes. Re-locking a slot the caller already holds returns the existing lock unchanged.
// @Tags slot-locks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LockSlotRequest true "Slot key"
// @Success 201 {object} resdto.LockResponse
// @Success 200 {object} resdto.LockResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/slot-locks [post]
func (h *SlotLockHandler) Lock(c *gin.Context) {
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.LockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.LockSlot(c.Request.Context(), caller, params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if result.Reacquired {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromLockResult(result))
}

// @Summary Release a lock
// @Description Release a slot lock by id. Only the holder or an admin may release it.
// @Tags slot-locks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lock ID"
// @Success 200 {object} resdto.ReleaseAllResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/slot-locks/{id} [delete]
func (h *SlotLockHandler) UnlockByID(c *gin.Context) {
	lockID, ok := pathID(c)
	if !ok {
		return
	}
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.UnlockByID(c.Request.Context(), caller, lockID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReleaseAllResponse{Released: 1})
}

// @Summary Release locks by key
// @Description Release the caller's lock on one slot, or every lock the caller holds with all=true (or holder=me)
// @Tags slot-locks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param all query bool false "Release every lock held by the caller"
// @Param holder query string false "me releases every lock held by the caller"
// @Param request body reqdto.UnlockSlotRequest false "Slot key"
// @Success 200 {object} resdto.ReleaseAllResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/slot-locks [delete]
func (h *SlotLockHandler) Unlock(c *gin.Context) {
	caller, ok := requireActor(c)
	if !ok {
		return
	}
	if c.Query("all") == "true" || c.Query("holder") == "me" {
		n, err := h.cmds.ReleaseAll(c.Request.Context(), caller)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.ReleaseAllResponse{Released: n})
		return
	}

	var req reqdto.UnlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UnlockByKey(c.Request.Context(), caller, params); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReleaseAllResponse{Released: 1})
}
