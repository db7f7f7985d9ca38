package metrics

import (
	"net/http"
	"strconv"

	log "github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	wordsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "word2vec_words_processed_total",
			Help: "corpus words consumed by training workers",
		},
	)
	learningRate = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "word2vec_learning_rate",
			Help: "current annealed learning rate",
		},
	)
	epochsDone = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "word2vec_epochs_completed_total",
			Help: "epochs finished per worker",
		},
		[]string{"worker"},
	)
	vocabSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "word2vec_vocab_size",
			Help: "words in the frozen vocabulary",
		},
	)
)

func init() {
	prometheus.MustRegister(wordsProcessed, learningRate, epochsDone, vocabSize)
}

func AddWords(n int64) {
	wordsProcessed.Add(float64(n))
}

func SetLearningRate(alpha float32) {
	learningRate.Set(float64(alpha))
}

func EpochDone(worker int) {
	epochsDone.WithLabelValues(strconv.Itoa(worker)).Inc()
}

func SetVocabSize(n int) {
	vocabSize.Set(float64(n))
}

// Serve exposes the default registry on addr in the background. An empty
// addr disables exposition.
func Serve(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Infof("serving metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Errorf("metrics server: %v", err)
		}
	}()
}
