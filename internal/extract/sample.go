package extract

import "fmt"

// SampleSyllabus produces a stand-in syllabus text for demo and offline use.
// Callers fall back to it only when extraction yields nothing usable.
func SampleSyllabus(fileName string) string {
	return fmt.Sprintf(`Course Syllabus (from %s)

Course: Introduction to Computer Science
Schedule: MWF 10:00-11:30AM
Description: Fundamentals of programming, data structures, and algorithms.

Assignments:
1. Programming Assignment 1 - due week 3
2. Midterm Project - due week 8
3. Final Project - due week 15
`, fileName)
}
