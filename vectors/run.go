package vectors

import (
	log "github.com/sirupsen/logrus"
)

type Summary struct {
	Passed   int
	Failed   int
	Failures []Result
}

func (s Summary) OK() bool {
	return s.Failed == 0
}

// Run checks every vector. A vector that cannot be evaluated counts as a
// failure with an empty Got.
func Run(vs []Vector) Summary {
	var s Summary
	for _, v := range vs {
		res, err := v.Check()
		if err != nil {
			log.Errorf("line %d: %s: %v", v.Line, v.Op, err)
			s.Failed++
			s.Failures = append(s.Failures, Result{Vector: v})
			continue
		}

		fields := log.Fields{
			"line": v.Line,
			"op":   v.Op,
			"got":  res.Got,
			"want": v.Expected,
		}
		if !res.Pass {
			log.WithFields(fields).Error("vector mismatch")
			s.Failed++
			s.Failures = append(s.Failures, res)
			continue
		}
		log.WithFields(fields).Debug("vector ok")
		s.Passed++
	}
	return s
}
