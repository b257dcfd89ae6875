package subhandler

import "github.com/RicardoRibeirorr/subhandler/common"

// Cancelable is a handle to an ongoing subscription that can be released
type Cancelable = common.Cancelable

// CancelFunc adapts a release function without a result
type CancelFunc = common.CancelFunc

// ReleaseFunc adapts a release function that reports failure
type ReleaseFunc = common.ReleaseFunc

// ReleaseError is a single release fault raised during OnDestroy
type ReleaseError = common.ReleaseError

// Option configures the registry behind a SubscriptionHandler
type Option = common.Option

var (
	FromCloser      = common.FromCloser
	Once            = common.Once
	ReleaseErrors   = common.ReleaseErrors
	WithLogger      = common.WithLogger
	WithName        = common.WithName
	WithMetrics     = common.WithMetrics
	NewMetrics      = common.NewMetrics
	ErrNilHandle    = common.ErrNilHandle
	ErrReleasePanic = common.ErrReleasePanic
)
