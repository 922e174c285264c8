// Package seed renders skills and track memberships as SQL insert
// statements.
//
// The output has a fixed section order: a header, informational comments for
// CEFR levels and skill categories, then inserts into tb_skills,
// tb_skill_examples, tb_skill_dependencies, tb_learning_tracks and
// tb_learning_track_skills. Every statement spans two lines:
//
//	INSERT INTO tb_skills (id, code, ...) VALUES
//	  ('2b1e...', 'a1_greetings', ...);
//
// Identifiers come from an IDSource, random UUIDs by default, so two renders
// of the same input differ only in identifiers. Normalize replaces them with
// stable placeholders for comparison.
package seed
