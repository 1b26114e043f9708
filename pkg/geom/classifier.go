package geom

import "github.com/ironplane/ironplane/pkg/ierrors"

// Classifier maps this package's sentinel errors to ierrors codes. Callers
// at the CLI/HTTP boundary register it once during startup:
//
//	ierrors.Register(geom.Classifier)
func Classifier(err error) (ierrors.Code, bool) {
	switch {
	case isErr(err, ErrDegenerateGeometry):
		return ierrors.ErrCodeDegenerateGeometry, true
	case isErr(err, ErrNonPlanar):
		return ierrors.ErrCodeNonPlanar, true
	default:
		return "", false
	}
}

func isErr(err, target error) bool {
	for err != nil {
		if err == target {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
