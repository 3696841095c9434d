package constants

const (
	MAX_PAGE_SIZE              = 100
	DEFAULT_OFFSET             = uint64(0)
	DEFAULT_ALLOCATIONS_LIMIT  = 20
	MAX_CLAIM_REFERENCE_LENGTH = 128
	REQUEST_ID_HEADER          = "X-Request-ID"
)

const SERVICE_NAME = "fairmint-api"
