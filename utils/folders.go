package utils

import "path"

var DataFolder string

func PathData(p ...string) string {
	pj := path.Join(p...)
	if path.IsAbs(pj) {
		return pj
	}
	return path.Join(DataFolder, pj)
}
