package main

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"github.com/daniildemkin/Information-protection/pkg/ecb"
	"github.com/daniildemkin/Information-protection/pkg/feistel"
	"github.com/daniildemkin/Information-protection/pkg/gost"
	"github.com/daniildemkin/Information-protection/pkg/padding"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"io"
	"log"
	"os"
	"strings"
)

var progressBar *progressbar.ProgressBar

// reportError writes the error to the log file and tells the user what went
// wrong in terms of the menu action, not the internals.
func reportError(err error) {
	log.Println(err)

	var gostKey gost.KeySizeError
	var toyKey feistel.KeySizeError
	switch {
	case errors.As(err, &gostKey):
		color.Red("Ошибка: Неверная длина ключа! Ожидается 32 байта.")
	case errors.As(err, &toyKey):
		color.Red("Ошибка: Неверная длина ключа! Ожидается 8 байт.")
	case errors.Is(err, padding.ErrMalformed), errors.Is(err, ecb.ErrInvalidLength):
		color.Red("Ошибка: неверный ключ или поврежденный файл!")
	default:
		color.Red(fmt.Sprintf("Ошибка: %v", err))
	}
}

func readPlaintext(path string) ([]byte, error) {
	var buffer bytes.Buffer

	file, err := os.Open(path)
	if err != nil {
		log.Println(err)
		return nil, err
	}
	defer file.Close()

	_, err = io.Copy(&buffer, file)
	if err != nil {
		log.Println(err)
		return nil, err
	}

	return buffer.Bytes(), nil
}

func writePlaintext(path string, data []byte) error {
	out, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		log.Println(err)
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, bytes.NewReader(data))
	if err != nil {
		log.Println(err)
		return err
	}

	return nil
}

// writeCiphertext stores the binary ciphertext and a base64 text twin next
// to it under the same name with a .txt suffix.
func writeCiphertext(path string, data []byte) error {
	err := writePlaintext(path, data)
	if err != nil {
		return err
	}

	sidecar, err := os.OpenFile(path+".txt", os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		log.Println(err)
		return err
	}
	defer sidecar.Close()

	_, err = io.Copy(sidecar, strings.NewReader(base64.StdEncoding.EncodeToString(data)))
	if err != nil {
		log.Println(err)
		return err
	}

	return nil
}

// readCiphertext loads an encrypted file, accepting either the binary form
// or its base64 text twin. A file whose whole content decodes as base64 is
// treated as the text form.
func readCiphertext(path string) ([]byte, error) {
	var buffer bytes.Buffer

	file, err := os.Open(path)
	if err != nil {
		log.Println(err)
		return nil, err
	}
	defer file.Close()

	_, err = io.Copy(&buffer, file)
	if err != nil {
		log.Println(err)
		return nil, err
	}
	raw := buffer.Bytes()

	text := strings.TrimSpace(string(raw))
	if len(text) > 0 {
		if decoded, err := base64.StdEncoding.DecodeString(text); err == nil {
			return decoded, nil
		}
	}

	return raw, nil
}
