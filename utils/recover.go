package utils

import "fmt"

// RecoverCall runs f and turns a panic inside it into the returned error.
func RecoverCall(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if errr, ok := r.(error); ok {
				err = errr
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	err = f()
	return
}
