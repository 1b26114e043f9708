package iges

import "github.com/ironplane/ironplane/pkg/ierrors"

// Classifier maps this package's sentinel errors to ierrors codes. Register
// it once during startup: ierrors.Register(iges.Classifier).
func Classifier(err error) (ierrors.Code, bool) {
	switch {
	case isErr(err, ErrUnresolvedReference):
		return ierrors.ErrCodeUnresolvedReference, true
	case isErr(err, ErrCyclicDependency):
		return ierrors.ErrCodeCyclicDependency, true
	case isErr(err, ErrUnsupportedEntity):
		return ierrors.ErrCodeUnsupportedEntity, true
	case isErr(err, ErrIO):
		return ierrors.ErrCodeIO, true
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
