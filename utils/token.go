package utils

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/sandertv/gophertunnel/minecraft/auth"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const tokenFile = "token.json"

func readToken() (*oauth2.Token, error) {
	f, err := os.Open(PathData(tokenFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var t oauth2.Token
	if err := json.NewDecoder(f).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func writeToken(t *oauth2.Token) error {
	f, err := os.Create(PathData(tokenFile))
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(t)
}

// GetTokenSource returns a refreshing xbox live token source, asking for a
// device login when no cached token exists.
func GetTokenSource() (oauth2.TokenSource, error) {
	token, err := readToken()
	if errors.Is(err, os.ErrNotExist) {
		token, err = auth.RequestLiveToken()
		if err != nil {
			return nil, err
		}
		if err := writeToken(token); err != nil {
			logrus.Warnf("Failed to save token %s", err)
		}
	} else if err != nil {
		return nil, err
	}

	src := auth.RefreshTokenSource(token)
	fresh, err := src.Token()
	if err != nil {
		return nil, err
	}
	if fresh.AccessToken != token.AccessToken {
		if err := writeToken(fresh); err != nil {
			logrus.Warnf("Failed to save token %s", err)
		}
	}
	return src, nil
}
