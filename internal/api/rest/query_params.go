package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solforge/fairmint/internal/api/shared/constants"
	apierrors "github.com/solforge/fairmint/internal/api/shared/errors"
)

// ListAllocationsQueryParams holds query parameters for GET /events/:event_id/allocations
type ListAllocationsQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// Validate validates the query parameters
func (p *ListAllocationsQueryParams) Validate() error {
	if p.Limit < 1 || p.Limit > constants.MAX_PAGE_SIZE {
		return apierrors.NewValidationError(fmt.Sprintf("limit must be between 1 and %d", constants.MAX_PAGE_SIZE))
	}
	return nil
}

// ParseListAllocationsQuery parses query parameters for GET /events/:event_id/allocations
func ParseListAllocationsQuery(c *gin.Context) (*ListAllocationsQueryParams, error) {
	var params ListAllocationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	return &params, nil
}

// parseEventID parses the :event_id path parameter
func parseEventID(c *gin.Context) (uint64, error) {
	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		return 0, apierrors.NewBadRequestError("Invalid event ID", c.Param("event_id"))
	}
	return eventID, nil
}
