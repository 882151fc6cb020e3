// Package weather provides current temperatures to drive color maps.
package weather

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/keep94/toolbox/http_util"
	"golang.org/x/net/html/charset"
)

var (
	// Reported by Cache.Read when the cache has no observation.
	ErrNoObservation = errors.New("weather: No observation.")
)

// Observation represents a weather observation.
// These instances must be treated as immutable.
type Observation struct {
	// Temperature in celsius
	Temperature float64 `xml:"temp_c"`
	// Weather conditions e.g 'Fair' or 'Partly Cloudy'
	Weather string `xml:"weather"`
}

// StationConn represents a connection to a NOAA weather station.
type StationConn struct {
	client http.Client
	url    *url.URL
}

// NewStationConn returns a new, long lived, connection to a NOAA weather
// station. For example "KNUQ" means moffett field.
func NewStationConn(station string) *StationConn {
	return &StationConn{url: getUrl(station)}
}

// Get returns the current observation.
func (c *StationConn) Get() (observation *Observation, err error) {
	request := &http.Request{
		Method: "GET",
		URL:    c.url}
	var resp *http.Response
	if resp, err = c.client.Do(request); err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("weather: NOAA returned %s", resp.Status)
		return
	}
	decoder := xml.NewDecoder(resp.Body)
	decoder.CharsetReader = charset.NewReaderLabel
	var result Observation
	if err = decoder.Decode(&result); err != nil {
		return
	}
	return &result, nil
}

// Read returns the current temperature in celsius.
func (c *StationConn) Read() (float64, error) {
	observation, err := c.Get()
	if err != nil {
		return 0.0, err
	}
	return observation.Temperature, nil
}

// OpenWeatherConn represents a connection to the open weather servers
type OpenWeatherConn struct {
	client http.Client
	url    *url.URL
}

// NewOpenWeatherConn returns a new, long lived, open weather connection.
func NewOpenWeatherConn(apiKey string) *OpenWeatherConn {
	return &OpenWeatherConn{url: getOpenWeatherUrl(apiKey)}
}

// Get returns the weather for a particular city. The city ID for a city
// can be found by downloading city.list.json.gz from
// http://bulk.openweathermap.org/sample/. For example, Mountain View, CA
// is "5375480"
func (c *OpenWeatherConn) Get(cityId string) (
	observation *Observation, err error) {
	request := &http.Request{
		Method: "GET",
		URL:    http_util.AppendParams(c.url, "id", cityId)}
	var resp *http.Response
	if resp, err = c.client.Do(request); err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("weather: Open weather returned %s", resp.Status)
		return
	}
	decoder := json.NewDecoder(resp.Body)
	var result openWeatherObservation
	if err = decoder.Decode(&result); err != nil {
		return
	}
	if len(result.Weather) == 0 {
		err = errors.New("weather:Missing weather section in open weather response")
		return
	}
	if result.Main == nil {
		err = errors.New("weather:Missing main section in open weather response")
		return
	}
	return &Observation{
		Temperature: result.Main.Temp - 273.15,
		Weather:     result.Weather[0].Description,
	}, nil
}

// CityReader returns a reader of the current temperature in celsius for
// cityId.
func (c *OpenWeatherConn) CityReader(cityId string) *CityReader {
	return &CityReader{conn: c, cityId: cityId}
}

// CityReader reads the temperature of one city from open weather.
type CityReader struct {
	conn   *OpenWeatherConn
	cityId string
}

// Read returns the current temperature in celsius.
func (r *CityReader) Read() (float64, error) {
	observation, err := r.conn.Get(r.cityId)
	if err != nil {
		return 0.0, err
	}
	return observation.Temperature, nil
}

// Cache stores a single weather observation and notifies clients when
// this observation changes. Cache instances can be safely used with
// multiple goroutines.
type Cache struct {
	lock        sync.Mutex
	observation *Observation
	stale       chan struct{}
}

// NewCache creates a new cache containing no observation.
func NewCache() *Cache {
	return &Cache{stale: make(chan struct{})}
}

// Set updates the observation in this cache and notifies all waiting clients.
// Set does nothing after Close.
func (c *Cache) Set(observation *Observation) {
	if stale := c.set(observation, make(chan struct{})); stale != nil {
		close(stale)
	}
}

// Get returns the current observation in this cache. Clients can use the
// returned channel to block until a new observation is available.
func (c *Cache) Get() (*Observation, <-chan struct{}) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.observation, c.stale
}

// Read returns the cached temperature in celsius. Read returns
// ErrNoObservation if this cache is empty.
func (c *Cache) Read() (float64, error) {
	observation, _ := c.Get()
	if observation == nil {
		return 0.0, ErrNoObservation
	}
	return observation.Temperature, nil
}

// Close frees resources associated with this cache and wakes all waiting
// clients. After Close, the cache stays empty.
func (c *Cache) Close() error {
	if stale := c.set(nil, nil); stale != nil {
		close(stale)
	}
	return nil
}

// set returns nil if this cache is already closed.
func (c *Cache) set(
	observation *Observation, stale chan struct{}) chan struct{} {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.stale == nil {
		return nil
	}
	c.observation = observation
	result := c.stale
	c.stale = stale
	return result
}

func getUrl(station string) *url.URL {
	return &url.URL{
		Scheme: "http",
		Host:   "w1.weather.gov",
		Path:   fmt.Sprintf("/xml/current_obs/%s.xml", station)}
}

func getOpenWeatherUrl(apiKey string) *url.URL {
	base := &url.URL{
		Scheme: "http",
		Host:   "api.openweathermap.org",
		Path:   "/data/2.5/weather"}
	return http_util.AppendParams(base, "appid", apiKey)
}

type openWeatherObservation struct {
	Weather []openWeatherWeather `json:"weather"`
	Main    *openWeatherMain     `json:"main"`
}

type openWeatherWeather struct {
	Description string `json:"description"`
}

type openWeatherMain struct {
	Temp float64 `json:"temp"`
}
