package main

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"github.com/daniildemkin/Information-protection/pkg/ecb"
	"github.com/daniildemkin/Information-protection/pkg/feistel"
	"github.com/daniildemkin/Information-protection/pkg/gost"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"io"
	"os"
)

func GenerateKeyFile(keyPath, algorithm string) {
	var key []byte

	switch algorithm {
	case "GOST":
		key = make([]byte, gost.KeySize)
		if _, err := io.ReadFull(Reader, key); err != nil {
			reportError(err)
			return
		}
	case "FEISTEL":
		master, err := feistel.GenerateKey()
		if err != nil {
			reportError(err)
			return
		}
		key = make([]byte, feistel.KeySize)
		binary.BigEndian.PutUint64(key, master)
	default:
		reportError(fmt.Errorf("неизвестный алгоритм: %s", algorithm))
		return
	}

	out, err := os.OpenFile(keyPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		reportError(err)
		return
	}
	defer out.Close()

	_, err = out.Write(key)
	if err != nil {
		reportError(err)
		return
	}

	color.Green(fmt.Sprintf("Ключ сохранен в %s", keyPath))
}

func EncryptFile(inputPath, outputPath, keyPath, algorithm string) {
	block, err := loadCipher(algorithm, keyPath)
	if err != nil {
		reportError(err)
		return
	}

	data, err := readPlaintext(inputPath)
	if err != nil {
		reportError(err)
		return
	}

	progressBar = progressbar.Default(100)
	encrypted := ecb.Encrypt(block, data, progressBar)

	err = writeCiphertext(outputPath, encrypted)
	if err != nil {
		reportError(err)
		return
	}

	color.Green(fmt.Sprintf("Файл зашифрован и сохранен как %s (бинарный) и %s.txt (текстовый)", outputPath, outputPath))
}

func DecryptFile(inputPath, outputPath, keyPath, algorithm string) {
	block, err := loadCipher(algorithm, keyPath)
	if err != nil {
		reportError(err)
		return
	}

	data, err := readCiphertext(inputPath)
	if err != nil {
		reportError(err)
		return
	}

	progressBar = progressbar.Default(100)
	decrypted, err := ecb.Decrypt(block, data, progressBar)
	if err != nil {
		reportError(err)
		return
	}

	err = writePlaintext(outputPath, decrypted)
	if err != nil {
		reportError(err)
		return
	}

	color.Green(fmt.Sprintf("Файл %s расшифрован и сохранен как %s", inputPath, outputPath))
}

func loadCipher(algorithm, keyPath string) (cipher.Block, error) {
	in, err := os.OpenFile(keyPath, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	key, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	switch algorithm {
	case "GOST":
		return gost.NewCipher(key)
	case "FEISTEL":
		return feistel.NewCipherFromBytes(key)
	}

	return nil, fmt.Errorf("неизвестный алгоритм: %s", algorithm)
}
