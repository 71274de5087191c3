package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/radovskyb/watcher"
)

var siteConfPath = flag.String("siteConfPath", "caps11.yaml", "Path to the site configuration file")
var serve = flag.Bool("serve", false, "Start a localhost:9999 server for the capsule")
var watch = flag.Bool("watch", false, "Keep running and re-render the capsule on changes to the source directories.")
var drafts = flag.Bool("drafts", false, "Include entries with the 'draft' flag.")

func main() {
	flag.Parse()

	conf := readConf(*siteConfPath)

	renderSite(conf, *drafts)

	if *watch && *serve {
		// Run watcher in background while serving
		go rerenderOnChange(conf, *drafts)
	}

	if *serve {
		serveSite(conf.OutDir)
	} else if *watch {
		// Watch mode without serve: block on the watcher
		rerenderOnChange(conf, *drafts)
	}
}

func renderSite(conf *SiteConf, drafts bool) {
	site, err := ReadSite(conf, drafts)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Writing capsule to " + conf.OutDir)
	if err = site.RenderAll(); err != nil {
		log.Fatal(err)
	}
	if err = site.CopyStaticFiles(); err != nil {
		log.Fatal(err)
	}
}

func serveSite(dir string) {
	port := ":9999"

	http.Handle("/", http.FileServer(http.Dir(dir)))
	log.Printf("Serving %v on %v.", dir, port)
	log.Fatal(http.ListenAndServe(port, nil))
}

func rerenderOnChange(conf *SiteConf, drafts bool) {
	sourceDirs := []string{conf.PostsDir, conf.PagesDir, conf.TemplatesDir, conf.StaticFilesDir}
	log.Printf("Watching %v for changes...", sourceDirs)

	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-w.Event:
				renderSite(conf, drafts)
			case err := <-w.Error:
				log.Println(err)
			case <-w.Closed:
				return
			}
		}
	}()

	for _, dir := range sourceDirs {
		if err := w.AddRecursive(dir); err != nil {
			log.Fatalln(err)
		}
	}

	if err := w.Start(time.Millisecond * 200); err != nil {
		log.Fatalln(err)
	}
}
