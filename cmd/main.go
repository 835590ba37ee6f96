package main

import (
	"log"
	"os"
	"path"

	"github.com/denizyilmaz97/plate-recognition/pkg/api"
	"github.com/denizyilmaz97/plate-recognition/pkg/db"
	"github.com/spf13/viper"
)

//ensureDir creates dir if it does not exist yet
func ensureDir(dir string) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			if err := os.Mkdir(dir, 0766); err != nil {
				log.Printf("Error Creating '%s' directory, got '%v'", dir, err)
			}
		}
	}
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error: Could not read config file, got '%v'", err)
	}

	//first - create project's data root dir
	ensureDir(viper.GetString("directory.root"))

	//create missing directories from config file
	for _, dir := range viper.GetStringMap("directory") {
		ensureDir(dir.(string))
	}

	if viper.GetString("video.prod_format") == "" || viper.GetString("detector.script") == "" || viper.GetString("ocr.script") == "" || viper.GetString("frontend.static-files-path") == "" {
		log.Fatalf("Error: Missing critical configurations")
	}

	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		dbPath = path.Join(viper.GetString("directory.root"), "plates.db")
	}

	results, err := db.NewDB(dbPath)
	if err != nil {
		log.Fatalf("Error: Could not open results database, got '%v'", err)
	}
	defer results.Close()

	r := api.SetRouter(results)
	if err := r.Run(":" + viper.GetString("http.port")); err != nil {
		log.Fatalf("Error: Got '%v'", err)
	}
}
