package main

import (
	"flag"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/danilovkiri/dk_go_shortlinks/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_shortlinks/internal/api/rest/modeldto"
)

func randStringBytes(n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

type created struct {
	code  string
	owner string
}

func main() {
	a := flag.String("a", "http://localhost:3000", "Server address")
	n := flag.Int("n", 20, "Iterations per stage")
	flag.Parse()
	address := *a
	iterations := *n

	const shorten = "/api/shorten"
	const list = "/api/urls"
	const info = "/s/"
	const ping = "/ping"

	client := resty.New()
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	owners := []string{uuid.New().String(), uuid.New().String(), ""}

	// Performing ping loading
	log.Println("Performing ping loading")
	for i := 0; i < iterations; i++ {
		if _, err := client.R().Get(address + ping); err != nil {
			log.Fatal(err)
		}
	}
	time.Sleep(1 * time.Second)

	// Performing shorten loading
	log.Println("Performing shorten loading")
	var links []created
	for i := 0; i < iterations; i++ {
		owner := owners[rand.Intn(len(owners))]
		var resp modeldto.ResponseLink
		res, err := client.R().
			SetHeader(middleware.OwnerHeader, owner).
			SetBody(modeldto.RequestShorten{URL: "https://www." + randStringBytes(10) + ".com"}).
			SetResult(&resp).
			Post(address + shorten)
		if err != nil {
			log.Fatal(err)
		}
		if res.StatusCode() == http.StatusOK {
			links = append(links, created{code: resp.Code, owner: owner})
		}
	}
	log.Println("Created", len(links), "links")
	time.Sleep(1 * time.Second)

	// Performing redirect and info loading
	log.Println("Performing redirect and info loading")
	for _, link := range links {
		if _, err := client.R().Get(address + "/" + link.code); err != nil {
			log.Fatal(err)
		}
		if _, err := client.R().Get(address + info + link.code); err != nil {
			log.Fatal(err)
		}
	}
	// misses feed url_shortener_not_found_total
	for i := 0; i < iterations; i++ {
		if _, err := client.R().Get(address + "/" + randStringBytes(12)); err != nil {
			log.Fatal(err)
		}
	}
	time.Sleep(1 * time.Second)

	// Performing list loading
	log.Println("Performing list loading")
	for i, owner := range owners {
		req := client.R().SetHeader(middleware.OwnerHeader, owner)
		if owner != "" {
			req.SetQueryParam("mine", "true")
		}
		res, err := req.Get(address + list)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Owner", i, res.StatusCode(), len(res.Body()), "bytes")
	}
	time.Sleep(1 * time.Second)

	// Performing delete loading
	log.Println("Performing delete loading")
	for _, link := range links {
		res, err := client.R().SetHeader(middleware.OwnerHeader, link.owner).Delete(address + list + "/" + link.code)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Deleting", link.code, res.StatusCode())
	}
}
