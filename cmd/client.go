package main

import (
	"bufio"
	"crypto/rand"
	"flag"
	"fmt"
	"github.com/fatih/color"
	"log"
	"os"
	"strings"
)

const LogPath = "gost.log"

var Reader = rand.Reader

func printTitle() {
	fmt.Println("")
	color.Cyan("\t\t\t\t|*****************************************|")
	fmt.Println("\t\t\t\t|ШИФРОВАНИЕ ФАЙЛОВ: ГОСТ 28147-89 И СЕТЬ ФЕЙСТЕЛЯ")
	fmt.Println("\t\t\t\t|\t\tby Daniil Demkin")
	color.Cyan("\t\t\t\t|*****************************************|")
	fmt.Println("")
}

func printPrompts() {
	fmt.Println("")
	color.Cyan("\t\t\t\t|*********************************************************|")
	color.Green("\t\t\t\t| Доступные действия: ")
	fmt.Println("\t\t\t\t| 1. Сгенерировать ключ")
	fmt.Println("\t\t\t\t| 2. Зашифровать файл")
	fmt.Println("\t\t\t\t| 3. Расшифровать файл")
	fmt.Println("\t\t\t\t| 4. Выйти")
	color.Cyan("\t\t\t\t|*********************************************************|")
	fmt.Println("")
}

func HandleClient(algorithm *string) {
	s := bufio.NewScanner(os.Stdin)

	fmt.Println("")
	color.Green(fmt.Sprintf("Выбран алгоритм шифрования %s", *algorithm))

	for {
		printPrompts()

		fmt.Print("Выберите действие: ")
		if !s.Scan() {
			return
		}

		switch strings.TrimSpace(s.Text()) {
		case "1":
			fmt.Print("Введите имя файла для ключа (по умолчанию key.bin): ")
			if !s.Scan() {
				return
			}
			keyPath := strings.TrimSpace(s.Text())
			if keyPath == "" {
				keyPath = "key.bin"
			}

			GenerateKeyFile(keyPath, *algorithm)
		case "2":
			fmt.Print("Файл для шифрования: ")
			if !s.Scan() {
				return
			}
			inputPath := strings.TrimSpace(s.Text())

			fmt.Print("Файл для сохранения: ")
			if !s.Scan() {
				return
			}
			outputPath := strings.TrimSpace(s.Text())

			fmt.Print("Файл с ключом: ")
			if !s.Scan() {
				return
			}
			keyPath := strings.TrimSpace(s.Text())

			EncryptFile(inputPath, outputPath, keyPath, *algorithm)
		case "3":
			fmt.Print("Файл для расшифрования: ")
			if !s.Scan() {
				return
			}
			inputPath := strings.TrimSpace(s.Text())

			fmt.Print("Файл для сохранения: ")
			if !s.Scan() {
				return
			}
			outputPath := strings.TrimSpace(s.Text())

			fmt.Print("Файл с ключом: ")
			if !s.Scan() {
				return
			}
			keyPath := strings.TrimSpace(s.Text())

			DecryptFile(inputPath, outputPath, keyPath, *algorithm)
		case "4":
			return
		default:
			color.Red("Ошибка: выберите корректный пункт!")
		}
	}
}

func main() {
	algorithm := flag.String("Алгоритм", "GOST", "Алгоритм шифрования (GOST или FEISTEL)")
	flag.Parse()

	logFile, err := os.OpenFile(LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Println(err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	printTitle()
	HandleClient(algorithm)
}
