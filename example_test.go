package fsredirect_test

import (
	"fmt"
	"os"

	"github.com/zeebo/fsredirect"
)

func ExampleDo() {
	path := `C:\Windows\System32\kernel32.dll`

	fi, _ := os.Stat(path)
	fmt.Println("- redirected size:", fi.Size())

	err := fsredirect.Do(func() error {
		fi, err := os.Stat(path)
		if err != nil {
			return err
		}
		fmt.Println("+ real size:", fi.Size())
		return nil
	})
	if err != nil {
		fmt.Println("can't disable redirection:", err)
	}

	fi, _ = os.Stat(path)
	fmt.Println("- redirected size:", fi.Size())
}
