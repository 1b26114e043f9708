package outline

import "github.com/ironplane/ironplane/pkg/ierrors"

// Classifier maps this package's sentinel errors to ierrors codes. Register
// it once during startup: ierrors.Register(outline.Classifier).
func Classifier(err error) (ierrors.Code, bool) {
	switch err {
	case ErrInvalidIntersection:
		return ierrors.ErrCodeInvalidIntersection, true
	case ErrDiscontinuous, ErrNotClosed, ErrWrongState:
		return ierrors.ErrCodeDegenerateGeometry, true
	default:
		return "", false
	}
}
