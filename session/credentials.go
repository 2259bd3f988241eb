package session

import (
	"crypto/tls"
	"errors"
	"os"

	pkcs12 "software.sslmate.com/src/go-pkcs12"

	"github.com/floegence/bfapi/bferrors"
)

// Credentials identify one account and application.
//
// The client certificate comes from the first of Certificate, PKCS12, CertificatePath
// (a PKCS#12 file with an empty or absent password) or CertFile/KeyFile (a PEM pair) that is set.
type Credentials struct {
	Username string
	Password string
	AppKey   string

	CertificatePath string
	PKCS12          []byte
	CertFile        string
	KeyFile         string
	Certificate     *tls.Certificate
}

func (c Credentials) validate() error {
	var missing []string
	if c.Username == "" {
		missing = append(missing, "username")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if c.AppKey == "" {
		missing = append(missing, "app key")
	}
	if len(missing) > 0 {
		return bferrors.New(bferrors.KindAuth, bferrors.StageLogin, bferrors.CodeMissingCredential, "", "missing %v", missing)
	}
	return nil
}

func (c Credentials) certificate() (tls.Certificate, error) {
	switch {
	case c.Certificate != nil:
		return *c.Certificate, nil
	case len(c.PKCS12) > 0:
		return fromPKCS12(c.PKCS12)
	case c.CertificatePath != "":
		data, err := os.ReadFile(c.CertificatePath)
		if err != nil {
			return tls.Certificate{}, certErr(c.CertificatePath, err)
		}
		return fromPKCS12(data)
	case c.CertFile != "" || c.KeyFile != "":
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return tls.Certificate{}, certErr(c.CertFile, err)
		}
		return cert, nil
	default:
		return tls.Certificate{}, certErr("", errors.New("no client certificate configured"))
	}
}

// fromPKCS12 decodes a PKCS#12 container protected by an empty password, or by none at all.
// CA certificates in the container follow the leaf in the presented chain.
func fromPKCS12(data []byte) (tls.Certificate, error) {
	key, leaf, ca, err := pkcs12.DecodeChain(data, "")
	if err != nil {
		return tls.Certificate{}, certErr("pkcs12", err)
	}
	chain := make([][]byte, 0, 1+len(ca))
	chain = append(chain, leaf.Raw)
	for _, c := range ca {
		chain = append(chain, c.Raw)
	}
	return tls.Certificate{Certificate: chain, PrivateKey: key, Leaf: leaf}, nil
}

func certErr(subject string, err error) error {
	return &bferrors.Error{Kind: bferrors.KindAuth, Stage: bferrors.StageLogin, Code: bferrors.CodeCertificate, Subject: subject, Err: err}
}
