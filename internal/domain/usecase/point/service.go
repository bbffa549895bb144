package point

import (
	"github.com/amirhossein-jamali/point-processor/internal/domain/lock"
	coreport "github.com/amirhossein-jamali/point-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/point-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/point-processor/internal/domain/port/usecase"
)

// Service implements the point business logic. Charge and Use are serialized
// per user through the keyed lock; queries bypass it entirely. Timestamps are
// assigned by the stores at write time, so the service carries no clock.
type Service struct {
	userPointRepo persistence.UserPointRepository
	historyRepo   persistence.PointHistoryRepository
	locks         *lock.KeyedLock
	logger        coreport.Logger
}

// NewPointService creates a new point service instance
func NewPointService(
	userPointRepo persistence.UserPointRepository,
	historyRepo persistence.PointHistoryRepository,
	locks *lock.KeyedLock,
	logger coreport.Logger,
) usecase.PointUseCase {
	return &Service{
		userPointRepo: userPointRepo,
		historyRepo:   historyRepo,
		locks:         locks,
		logger:        logger,
	}
}
