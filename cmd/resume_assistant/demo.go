package main

// Built-in sample inputs for the --demo flag.

const demoResume = `Jane Doe
Senior Backend Engineer
jane.doe@example.com | Seattle, WA

Summary
Backend engineer with 7 years of experience building data-intensive services in Python and Go.
Led migration of a monolith to microservices on Kubernetes, reducing deploy time by 80%.

Experience
Acme Corp, Senior Backend Engineer (2021-present)
- Designed REST APIs serving 40M requests/day using Python, FastAPI and PostgreSQL.
- Built streaming ingestion with Kafka and reduced end-to-end latency by 60%.
- Introduced Terraform-managed infrastructure on AWS, cutting provisioning time in half.

Initech, Software Engineer (2017-2021)
- Developed internal analytics tooling in Python with pandas and SQL.
- Containerized legacy services with Docker and automated CI with Jenkins.

Skills
Python, Go, SQL, PostgreSQL, Kafka, Docker, Kubernetes, Terraform, AWS, Git

Education
B.S. Computer Science, University of Washington`

const demoJob = `Senior Backend Engineer

We are looking for a senior backend engineer to join our platform team.

Responsibilities
- Design and operate scalable APIs in Python or Go.
- Own services deployed on Kubernetes in AWS.
- Work with PostgreSQL and Kafka based data pipelines.

Requirements
- 5+ years of backend development experience.
- Strong Python skills and solid SQL knowledge.
- Experience with Docker, Kubernetes and infrastructure as code (Terraform).
- Familiarity with monitoring and incident response.`
